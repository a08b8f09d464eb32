package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志级别
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// SetupLogger 初始化日志系统，输出到带轮转的日志文件
func SetupLogger(config *Config) (*log.Logger, error) {
	logDir := filepath.Dir(config.Log.File)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   config.Log.File,
		MaxSize:    config.Log.MaxSize,
		MaxBackups: 3,
		MaxAge:     config.Log.MaxAge,
		Compress:   true,
	}

	// 直接使用 lumberjack.Logger，它会自动添加时间戳
	logger := log.New(lumberjackLogger, "", log.LstdFlags)
	return logger, nil
}

// LogMessage 根据日志等级记录日志
func LogMessage(logger *log.Logger, level int, message string, config *Config) {
	if shouldLog(level, config) {
		levelStr := "DEBUG"
		switch level {
		case LevelInfo:
			levelStr = "INFO"
		case LevelWarn:
			levelStr = "WARN"
		case LevelError:
			levelStr = "ERROR"
		}
		logger.Printf("[%s] %s", levelStr, message)
	}
}

// shouldLog 判断是否应该记录该等级的日志
func shouldLog(level int, config *Config) bool {
	return level >= config.Log.Level
}
