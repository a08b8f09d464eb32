package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"ez-sweep/pkg/constants"
)

// LoadConfig 从TOML文件加载配置并填充默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	md, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(config, md)
	return config, nil
}

// applyDefaults 填充缺省配置项
// 配置层是各默认值的唯一权威来源
func applyDefaults(config *Config, md toml.MetaData) {
	// 保留期限必须为正数，否则回退到默认值
	if config.Clean.CutoffHours <= 0 {
		config.Clean.CutoffHours = constants.DefaultCutoffHours
	}
	if config.Clean.Timezone == "" {
		config.Clean.Timezone = constants.DefaultTimezone
	}
	if config.Schedule.Cron == "" {
		config.Schedule.Cron = constants.DefaultCronSpec
	}
	if config.Log.File == "" {
		config.Log.File = constants.DefaultLogFile
	}
	// 级别0是合法的DEBUG，未配置与显式0要区分开
	if !md.IsDefined("log", "level") || config.Log.Level < 0 || config.Log.Level > 3 {
		config.Log.Level = constants.DefaultLogLevel
	}
	if config.Log.MaxSize <= 0 {
		config.Log.MaxSize = constants.DefaultLogMaxSize
	}
	if config.Log.MaxAge <= 0 {
		config.Log.MaxAge = constants.DefaultLogMaxAge
	}
}

// ParseExtensions 解析扩展名配置，统一为小写并去掉前导点
// 返回解析后的扩展名列表，以及是否为通配模式（任一项为"*"）
func ParseExtensions(raw string) ([]string, bool) {
	var exts []string
	wildcard := false

	for _, part := range strings.Split(raw, ",") {
		ext := strings.TrimSpace(part)
		if ext == "" {
			continue
		}
		if ext == "*" {
			wildcard = true
			continue
		}
		ext = strings.TrimPrefix(strings.ToLower(ext), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}

	return exts, wildcard
}
