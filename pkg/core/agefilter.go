package core

import (
	"time"

	"ez-sweep/pkg/constants"
)

// IsExpired 判断条目是否超过保留期限
// 以运行开始时刻refTime为基准，条目年龄达到cutoffHours（含）即视为过期。
// 更新时刻晚于基准时刻的条目（运行期间被修改、时钟偏差）永不过期。
func IsExpired(modTime, refTime time.Time, cutoffHours int) bool {
	// 期限默认值以配置层为准，这里的回退只为保证函数对任意输入可用
	if cutoffHours <= 0 {
		cutoffHours = constants.DefaultCutoffHours
	}
	return refTime.Sub(modTime) >= time.Duration(cutoffHours)*time.Hour
}
