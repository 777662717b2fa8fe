package model

import (
	"strings"
	"time"

	"github.com/relvacode/iso8601"
)

// ParseTime 解析 ISO 8601 时间, 没有时区的输入按 UTC 处理
func ParseTime(s string) (time.Time, error) {
	return iso8601.ParseString(strings.TrimSpace(s))
}
