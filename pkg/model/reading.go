package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeLayout 是不带时区的本地日期时间格式, 秒的小数部分仅在非零时输出
const TimeLayout = "2006-01-02T15:04:05.999999999"

// Reading 是一次传感器观测, 创建后不再修改
type Reading struct {
	Timestamp time.Time
	Category  Category
	Value     *float64
}

func NewReading(ts time.Time, c Category, value float64) Reading {
	return Reading{Timestamp: ts, Category: c, Value: &value}
}

// Complete 表示三个字段都存在
func (r Reading) Complete() bool {
	return !r.Timestamp.IsZero() && r.Category.Valid() && r.Value != nil
}

func (r Reading) Equal(o Reading) bool {
	if !r.Timestamp.Equal(o.Timestamp) || r.Category != o.Category {
		return false
	}
	if r.Value == nil || o.Value == nil {
		return r.Value == nil && o.Value == nil
	}
	return *r.Value == *o.Value
}

// 返回类似 "2017-01-03T10:05:00,TEMP,35.79" 的字符串, 任一字段缺失时返回空串
func (r Reading) String() string {
	if !r.Complete() {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.Timestamp.Format(TimeLayout))
	b.WriteString(",")
	b.WriteString(r.Category.String())
	b.WriteString(",")
	b.WriteString(FormatValue(*r.Value))
	return b.String()
}

// FormatValue 输出最短的十进制表示, 整数值保留一位小数 ("35.0")
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

type Readings []*Reading

// Compact 去掉 nil 读数, 保持原有顺序
func (rs Readings) Compact() Readings {
	out := make(Readings, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
