package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsExpiredBoundary(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 正好到达保留期限的文件视为过期（含边界）
	assert.True(t, IsExpired(ref.Add(-24*time.Hour), ref, 24))

	// 差一分钟不到期限的文件保留
	assert.False(t, IsExpired(ref.Add(-23*time.Hour-59*time.Minute), ref, 24))

	// 远超期限
	assert.True(t, IsExpired(ref.Add(-25*time.Hour), ref, 24))
}

func TestIsExpiredFutureTimestamp(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 更新时刻等于或晚于基准时刻的条目永不过期
	assert.False(t, IsExpired(ref, ref, 24))
	assert.False(t, IsExpired(ref.Add(time.Hour), ref, 24))
}

func TestIsExpiredNonPositiveCutoff(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 期限非正数时回退到默认24小时
	assert.True(t, IsExpired(ref.Add(-25*time.Hour), ref, 0))
	assert.False(t, IsExpired(ref.Add(-1*time.Hour), ref, -5))
}
