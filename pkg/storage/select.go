package storage

import (
	"errors"
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

var maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Select 按分类和时间范围 [from, to] 过滤样本.
// 分类为 CategoryUnknown 表示不过滤分类, 零值时间表示该端不设限.
// 结果按分类声明顺序、再按时间排序.
func Select(samples model.Samples, c model.Category, from, to time.Time) (model.Samples, error) {
	store := NewMemoryStorage()
	if err := store.AppendAll(samples); err != nil {
		return nil, err
	}
	categories := store.Categories()
	if c != model.CategoryUnknown {
		categories = model.Categories{c}
	}
	if to.IsZero() {
		to = maxTime
	}

	result := model.Samples{}
	for _, cat := range categories {
		series, err := store.QueryRange(cat, from, to)
		if errors.Is(err, ErrSeriesNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, series.Samples...)
	}
	return result, nil
}
