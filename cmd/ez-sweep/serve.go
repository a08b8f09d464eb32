package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ez-sweep/pkg/core"
)

// serveCmd 以定时模式常驻运行
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "按cron表达式常驻定时清理，收到SIGINT/SIGTERM后退出",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scheduler := core.NewScheduler(config, logger)
		return scheduler.Start(ctx)
	},
}
