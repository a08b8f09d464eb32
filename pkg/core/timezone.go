package core

import (
	"time"

	"ez-sweep/pkg/constants"
)

// LoadTimezone 加载配置指定的时区
// 时区ID无效时降级使用默认时区，保证同一次运行内时间计算的一致性
func LoadTimezone(timezoneID string) (*time.Location, error) {
	loc, err := time.LoadLocation(timezoneID)
	if err == nil {
		return loc, nil
	}

	fallback, fbErr := time.LoadLocation(constants.DefaultTimezone)
	if fbErr != nil {
		// 默认时区也不可用时使用UTC（兼容精简的tzdata环境）
		return time.UTC, err
	}
	return fallback, err
}
