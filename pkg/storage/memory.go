package storage

import (
	"sort"
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

// MemoryStorage 在内存中按分类保存采样结果, 只在单个 goroutine 中使用
type MemoryStorage struct {
	series map[model.Category]*model.Series
}

var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		series: make(map[model.Category]*model.Series),
	}
}

func (ms *MemoryStorage) Append(s *model.Sample) error {
	if s == nil {
		return ErrNilSample
	}
	if !s.Category.Valid() {
		return ErrUnknownCategory
	}
	if series, ok := ms.series[s.Category]; ok {
		series.Samples = series.Samples.Append(*s)
	} else {
		ms.series[s.Category] = &model.Series{Category: s.Category, Samples: model.Samples{*s}}
	}
	return nil
}

// AppendAll 按顺序追加, 遇到第一个错误就返回
func (ms *MemoryStorage) AppendAll(samples model.Samples) error {
	for i := range samples {
		if err := ms.Append(&samples[i]); err != nil {
			return err
		}
	}
	return nil
}

// Query 返回分类下的全部样本, 按时间升序
func (ms *MemoryStorage) Query(c model.Category) (model.Series, error) {
	series, ok := ms.series[c]
	if !ok {
		return model.Series{}, ErrSeriesNotFound
	}
	return model.Series{Category: c, Samples: sorted(series.Samples)}, nil
}

// QueryRange 返回 [start, end] 内的样本, 两端都包含
func (ms *MemoryStorage) QueryRange(c model.Category, start, end time.Time) (model.Series, error) {
	if start.After(end) {
		return model.Series{}, ErrTimeRange
	}
	series, ok := ms.series[c]
	if !ok {
		return model.Series{}, ErrSeriesNotFound
	}
	result := model.Series{Category: c, Samples: model.Samples{}}
	for _, s := range sorted(series.Samples) {
		if s.Timestamp.Before(start) || s.Timestamp.After(end) {
			continue
		}
		result.Samples = result.Samples.Append(s)
	}
	return result, nil
}

func (ms *MemoryStorage) Delete(c model.Category) error {
	delete(ms.series, c)
	return nil
}

// Categories 按声明顺序返回有数据的分类
func (ms *MemoryStorage) Categories() model.Categories {
	cs := make(model.Categories, 0, len(ms.series))
	for c := range ms.series {
		cs = append(cs, c)
	}
	return cs.Sorted()
}

func sorted(samples model.Samples) model.Samples {
	out := make(model.Samples, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
