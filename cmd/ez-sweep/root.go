package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ez-sweep/pkg/constants"
	"ez-sweep/pkg/core"
)

var configPath string

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "ez-sweep",
	Short: "EZ-Sweep - 按年龄和扩展名定期清理目录",
	Long: `EZ-Sweep 定期清理配置的目标目录（如下载目录），
按文件年龄和扩展名过滤删除文件及子目录，适合作为计划任务无人值守运行。`,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "配置文件路径")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup 加载配置并初始化日志系统
func setup() (*core.Config, *log.Logger, error) {
	config, err := core.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := core.SetupLogger(config)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志系统失败: %w", err)
	}

	return config, logger, nil
}
