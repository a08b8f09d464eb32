package core

import (
	"fmt"
	"io"
	"strings"
)

// Print 输出清理结果汇总
func (s *RunSummary) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, r := range s.Results {
		fmt.Fprintf(w, "%s:\n", r.Path)
		fmt.Fprintf(w, "  删除文件: %d, 删除文件夹: %d, 跳过: %d, 失败: %d\n",
			r.FilesRemoved, r.DirsRemoved, r.FilesSkipped, r.FilesFailed+r.DirsFailed)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w, "合计:")
	fmt.Fprintf(w, "  删除文件: %d\n", s.Total.FilesRemoved)
	fmt.Fprintf(w, "  删除文件夹: %d\n", s.Total.DirsRemoved)
	fmt.Fprintf(w, "  跳过文件: %d\n", s.Total.FilesSkipped)
	fmt.Fprintf(w, "  失败文件: %d\n", s.Total.FilesFailed)
	fmt.Fprintf(w, "  失败文件夹: %d\n", s.Total.DirsFailed)
	fmt.Fprintf(w, "  释放空间: %.2f MB\n", float64(s.Total.SpaceFreed)/(1024*1024))
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
