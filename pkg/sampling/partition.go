package sampling

import "github.com/Vikt-B/sampling/pkg/model"

// Partitions 按分类存放读数. 没有读数的分类不会出现在 map 中.
type Partitions map[model.Category][]model.Reading

// Partition 按 categories 的顺序把读数拆分到各个分类, 每个分类内保持原始相对顺序.
// nil 读数、未知分类和没有时间戳的读数会被直接丢弃.
func Partition(readings []*model.Reading, categories model.Categories) Partitions {
	valid := model.Readings(readings).Compact()
	result := make(Partitions, len(categories))
	for _, c := range categories {
		if !c.Valid() {
			continue
		}
		var matched []model.Reading
		for _, r := range valid {
			if r.Timestamp.IsZero() {
				continue
			}
			if r.Category == c {
				matched = append(matched, *r)
			}
		}
		if len(matched) > 0 {
			result[c] = matched
		}
	}
	return result
}

// Get 返回分类下的读数, 不存在和为空都返回 nil
func (p Partitions) Get(c model.Category) []model.Reading {
	return p[c]
}
