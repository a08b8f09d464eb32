package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler 定时清理调度器
// 每次触发构建新的Cleaner，保证每轮清理使用各自的基准时刻。
type Scheduler struct {
	config     *Config
	logger     *log.Logger
	cron       *cron.Cron
	cleanMutex sync.Mutex
}

// NewScheduler 创建定时清理调度器
func NewScheduler(config *Config, logger *log.Logger) *Scheduler {
	return &Scheduler{
		config: config,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start 按配置的cron表达式启动定时清理，阻塞直到ctx取消
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.config.Schedule.Enable {
		LogMessage(s.logger, LevelInfo, "定时清理已禁用", s.config)
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.Schedule.Cron, s.PerformCleanup); err != nil {
		return fmt.Errorf("解析cron表达式失败: %w", err)
	}

	LogMessage(s.logger, LevelInfo, fmt.Sprintf("定时清理已启动: %s", s.config.Schedule.Cron), s.config)
	s.cron.Start()

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	LogMessage(s.logger, LevelInfo, "定时清理已停止", s.config)
	return nil
}

// PerformCleanup 执行一轮清理，已有清理在进行时跳过本次触发
func (s *Scheduler) PerformCleanup() {
	if !s.cleanMutex.TryLock() {
		LogMessage(s.logger, LevelDebug, "已有清理任务在进行中，跳过", s.config)
		return
	}
	defer s.cleanMutex.Unlock()

	LogMessage(s.logger, LevelInfo, "开始定时清理任务", s.config)

	cleaner := NewCleaner(s.config, s.logger)
	summary, err := cleaner.Run()
	if err != nil {
		LogMessage(s.logger, LevelError, fmt.Sprintf("定时清理失败: %v", err), s.config)
		return
	}

	LogMessage(s.logger, LevelInfo, fmt.Sprintf(
		"定时清理完成: 删除文件%d个, 删除文件夹%d个, 跳过%d个, 失败%d个, 释放空间%.2f MB",
		summary.Total.FilesRemoved,
		summary.Total.DirsRemoved,
		summary.Total.FilesSkipped,
		summary.Total.FilesFailed+summary.Total.DirsFailed,
		float64(summary.Total.SpaceFreed)/(1024*1024),
	), s.config)
}
