package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version 程序版本号，发布时通过 -ldflags 注入
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "输出版本号",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ez-sweep %s\n", Version)
	},
}
