package model

import "time"

// Sample 是降采样后的读数: 时间戳是所属窗口的右边界, ObservedAt 保留原始观测时间
type Sample struct {
	Reading
	ObservedAt time.Time
}

type Samples []Sample

func (s Samples) Append(sample Sample) Samples {
	return append(s, sample)
}

func (s Samples) Strings() []string {
	out := make([]string, 0, len(s))
	for _, sample := range s {
		out = append(out, sample.String())
	}
	return out
}

// Series 是单个分类下按时间排序的采样结果
type Series struct {
	Category Category
	Samples  Samples
}
