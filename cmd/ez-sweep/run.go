package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ez-sweep/pkg/core"
)

// runCmd 执行一次清理后退出
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "执行一次清理并输出结果汇总",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup()
		if err != nil {
			return err
		}

		core.LogMessage(logger, core.LevelInfo, "=== 清理任务开始 ===", config)

		cleaner := core.NewCleaner(config, logger)
		summary, err := cleaner.Run()
		if err != nil {
			// 配置错误是唯一中止整次运行的失败
			core.LogMessage(logger, core.LevelError, fmt.Sprintf("清理任务中止: %v", err), config)
			return err
		}

		core.LogMessage(logger, core.LevelInfo, fmt.Sprintf(
			"=== 清理任务完成: 删除文件%d个, 删除文件夹%d个, 失败%d个 ===",
			summary.Total.FilesRemoved,
			summary.Total.DirsRemoved,
			summary.Total.FilesFailed+summary.Total.DirsFailed,
		), config)

		summary.Print(os.Stdout)
		return nil
	},
}
