package constants

const (
	// 默认配置文件路径（相对于工作目录）
	DefaultConfigFile = "config.toml"

	// 默认日志文件路径
	DefaultLogFile = "ez-sweep.log"

	// 默认保留期限（小时）
	DefaultCutoffHours = 24

	// 默认时区（固定民用时区，避免夏令时带来的年龄计算偏差）
	DefaultTimezone = "Asia/Tokyo"

	// 默认定时清理表达式（每天凌晨2点）
	DefaultCronSpec = "0 2 * * *"

	// 日志默认值
	DefaultLogLevel   = 1  // INFO
	DefaultLogMaxSize = 10 // MB
	DefaultLogMaxAge  = 7  // 天
)
