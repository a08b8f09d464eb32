package core

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
)

// ErrNoTargetDirs 未配置任何清理目标目录时由Run返回
var ErrNoTargetDirs = errors.New("未配置清理目标目录")

// 删除操作入口，便于测试中模拟删除失败
var (
	removeEntry = os.Remove
	removeTree  = os.RemoveAll
)

// Cleaner 清理引擎
// 构建时捕获一次基准时刻，同一次运行内所有年龄判断使用同一基准。
type Cleaner struct {
	config     *Config
	logger     *log.Logger
	location   *time.Location
	refTime    time.Time
	extensions []string
	allFiles   bool
}

// NewCleaner 创建清理引擎
func NewCleaner(config *Config, logger *log.Logger) *Cleaner {
	loc, err := LoadTimezone(config.Clean.Timezone)
	if err != nil {
		LogMessage(logger, LevelWarn, fmt.Sprintf("加载时区%s失败: %v，使用%s", config.Clean.Timezone, err, loc.String()), config)
	}

	exts, allFiles := ParseExtensions(config.Clean.Extensions)

	return &Cleaner{
		config:     config,
		logger:     logger,
		location:   loc,
		refTime:    time.Now().In(loc),
		extensions: exts,
		allFiles:   allFiles,
	}
}

// Run 按配置顺序清理所有目标目录，返回汇总结果
// 只有目标目录为空这一种配置错误会中止运行，单个目录或条目的失败不会。
func (c *Cleaner) Run() (*RunSummary, error) {
	if len(c.config.Clean.Directories) == 0 {
		return nil, ErrNoTargetDirs
	}

	summary := &RunSummary{}

	for _, dir := range c.config.Clean.Directories {
		LogMessage(c.logger, LevelInfo, fmt.Sprintf("处理目录: %s", dir), c.config)
		result := c.CleanDirectory(dir)
		LogMessage(c.logger, LevelInfo, fmt.Sprintf(
			"目录处理完成: %s, 删除文件%d个, 删除文件夹%d个, 跳过%d个, 失败%d个",
			dir, result.FilesRemoved, result.DirsRemoved, result.FilesSkipped,
			result.FilesFailed+result.DirsFailed), c.config)
		summary.Results = append(summary.Results, result)
		summary.Total.add(result)
	}

	return summary, nil
}

// CleanDirectory 清理单个目标目录
//
// 通配模式（扩展名为"*"）：只遍历直接子项，过期文件删除，过期子目录整体
// 递归删除，未过期子目录整体保留不再深入。
// 扩展名模式：深度优先遍历整个子树，删除扩展名命中且过期的文件，之后自底
// 向上删除变空的子目录，目标目录本身不删除。
//
// 目录不存在或不可访问时返回全零结果并记录WARN，不视为致命错误。
func (c *Cleaner) CleanDirectory(path string) DirResult {
	result := DirResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("目录不存在或无法访问: %s, 错误: %v", path, err), c.config)
		return result
	}
	if !info.IsDir() {
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("指定路径不是目录: %s", path), c.config)
		return result
	}

	LogMessage(c.logger, LevelInfo, fmt.Sprintf("开始清理: %s", path), c.config)

	entries, err := os.ReadDir(path)
	if err != nil {
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("读取目录失败: %s, 错误: %v", path, err), c.config)
		return result
	}

	for _, entry := range entries {
		fullPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			if c.allFiles {
				c.processDirAsUnit(fullPath, entry, &result)
			} else {
				sub := c.cleanRecursive(fullPath)
				result.add(sub)
			}
		} else {
			c.processFile(fullPath, entry, &result)
		}
	}

	return result
}

// cleanRecursive 扩展名模式下递归清理子目录
// 处理完所有子项后若目录已空则删除，实现自底向上的级联清空
func (c *Cleaner) cleanRecursive(dir string) DirResult {
	var result DirResult

	if c.isWhitelisted(dir) {
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("跳过白名单目录: %s", dir), c.config)
		return result
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("读取目录失败: %s, 错误: %v", dir, err), c.config)
		return result
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub := c.cleanRecursive(fullPath)
			result.add(sub)
		} else {
			c.processFile(fullPath, entry, &result)
		}
	}

	// 重新读取目录判断是否已空，子目录先于父目录被移除后父目录同样可删
	remaining, err := os.ReadDir(dir)
	if err != nil {
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("读取目录失败: %s, 错误: %v", dir, err), c.config)
		return result
	}
	if len(remaining) == 0 {
		if err := removeEntry(dir); err != nil {
			result.DirsFailed++
			LogMessage(c.logger, LevelError, fmt.Sprintf("删除空目录失败: %s, 错误: %v", dir, err), c.config)
		} else {
			result.DirsRemoved++
			LogMessage(c.logger, LevelInfo, fmt.Sprintf("删除空目录: %s", dir), c.config)
		}
	} else {
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("目录非空，保留: %s", dir), c.config)
	}

	return result
}

// processDirAsUnit 通配模式下把子目录作为整体处理
// 只看目录自身的更新时刻，过期则整棵子树一次性删除，否则整体保留
func (c *Cleaner) processDirAsUnit(dir string, entry os.DirEntry, result *DirResult) {
	if c.isWhitelisted(dir) {
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("跳过白名单目录: %s", dir), c.config)
		return
	}

	info, err := entry.Info()
	if err != nil {
		// 取不到时间戳时按未过期处理，宁可保留不可误删
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("获取目录更新时刻失败: %s, 错误: %v", dir, err), c.config)
		return
	}

	if !IsExpired(info.ModTime().In(c.location), c.refTime, c.config.Clean.CutoffHours) {
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("目录未过期，整体保留: %s", dir), c.config)
		return
	}

	size := treeSize(dir)
	if err := removeTree(dir); err != nil {
		result.DirsFailed++
		LogMessage(c.logger, LevelError, fmt.Sprintf("删除目录失败: %s, 错误: %v", dir, err), c.config)
		return
	}

	result.DirsRemoved++
	result.SpaceFreed += size
	LogMessage(c.logger, LevelInfo, fmt.Sprintf("删除目录: %s, 释放: %d bytes", dir, size), c.config)
}

// processFile 处理单个文件：白名单、扩展名过滤、年龄判断、删除
func (c *Cleaner) processFile(path string, entry os.DirEntry, result *DirResult) {
	if c.isWhitelisted(path) {
		result.FilesSkipped++
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("跳过白名单文件: %s", path), c.config)
		return
	}

	if !c.allFiles && !c.matchExtension(entry.Name()) {
		result.FilesSkipped++
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("扩展名不匹配，跳过: %s", path), c.config)
		return
	}

	info, err := entry.Info()
	if err != nil {
		// 取不到时间戳时按未过期处理，宁可保留不可误删
		result.FilesSkipped++
		LogMessage(c.logger, LevelWarn, fmt.Sprintf("获取文件更新时刻失败: %s, 错误: %v", path, err), c.config)
		return
	}

	if !IsExpired(info.ModTime().In(c.location), c.refTime, c.config.Clean.CutoffHours) {
		result.FilesSkipped++
		LogMessage(c.logger, LevelDebug, fmt.Sprintf("文件未过期，跳过: %s", path), c.config)
		return
	}

	if err := removeEntry(path); err != nil {
		result.FilesFailed++
		LogMessage(c.logger, LevelError, fmt.Sprintf("删除文件失败: %s, 错误: %v", path, err), c.config)
		return
	}

	result.FilesRemoved++
	result.SpaceFreed += info.Size()
	LogMessage(c.logger, LevelDebug, fmt.Sprintf("删除文件: %s, 大小: %d bytes", path, info.Size()), c.config)
}

// matchExtension 判断文件扩展名是否命中过滤列表
// 匹配不区分大小写，多级后缀只看最后一级，无扩展名的文件永不命中
func (c *Cleaner) matchExtension(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}

	for _, pattern := range c.extensions {
		if wildcard.Match(pattern, ext) {
			return true
		}
	}
	return false
}

// isWhitelisted 判断路径是否命中白名单通配符
func (c *Cleaner) isWhitelisted(path string) bool {
	for _, pattern := range c.config.Clean.Whitelist {
		if wildcard.Match(pattern, path) {
			return true
		}
	}
	return false
}

// treeSize 统计子树内所有文件大小，删除前调用，失败时尽力而为
func treeSize(dir string) int64 {
	var total int64
	filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total
}
