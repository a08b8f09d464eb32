package core

// Config 主配置结构体
type Config struct {
	Clean    CleanConfig    `toml:"clean"`
	Schedule ScheduleConfig `toml:"schedule"`
	Log      LogConfig      `toml:"log"`
}

// CleanConfig 清理策略配置
type CleanConfig struct {
	Directories []string `toml:"directories"`  // 清理目标目录列表（按顺序处理）
	Extensions  string   `toml:"extensions"`   // 目标扩展名，逗号分隔，"*"表示全部
	CutoffHours int      `toml:"cutoff_hours"` // 保留期限（小时），超过即删除
	Timezone    string   `toml:"timezone"`     // 时间计算使用的时区ID，如 Asia/Tokyo
	Whitelist   []string `toml:"whitelist"`    // 白名单通配符，命中的路径不删除
}

// ScheduleConfig 定时清理配置
type ScheduleConfig struct {
	Enable bool   `toml:"enable"` // 是否启用定时清理
	Cron   string `toml:"cron"`   // cron表达式，如 "0 2 * * *"
}

// LogConfig 日志配置
type LogConfig struct {
	File    string `toml:"file"`     // 日志文件路径
	Level   int    `toml:"level"`    // 日志级别 0=DEBUG 1=INFO 2=WARN 3=ERROR
	MaxSize int    `toml:"max_size"` // 日志文件最大大小(MB)
	MaxAge  int    `toml:"max_age"`  // 日志文件保留天数
}

// DirResult 单个目标目录的清理结果统计
type DirResult struct {
	Path         string
	FilesRemoved int64
	DirsRemoved  int64
	FilesSkipped int64
	FilesFailed  int64
	DirsFailed   int64
	SpaceFreed   int64
}

// add 合并子目录的统计结果
func (r *DirResult) add(sub DirResult) {
	r.FilesRemoved += sub.FilesRemoved
	r.DirsRemoved += sub.DirsRemoved
	r.FilesSkipped += sub.FilesSkipped
	r.FilesFailed += sub.FilesFailed
	r.DirsFailed += sub.DirsFailed
	r.SpaceFreed += sub.SpaceFreed
}

// RunSummary 一次清理运行的汇总结果，所有目录处理完后构建，之后不再修改
type RunSummary struct {
	Results []DirResult // 按配置顺序的各目录结果
	Total   DirResult   // 各计数器的合计，Path为空
}
