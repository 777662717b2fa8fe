package sampling

import (
	"sort"

	"github.com/Vikt-B/sampling/pkg/model"
)

// Assemble 把各分类的结果合并为一个序列, 按分类声明顺序、再按时间升序稳定排序.
// 不依赖 map 的遍历顺序, 不去重.
func Assemble(results map[model.Category]model.Samples) model.Samples {
	var out model.Samples
	for _, c := range model.AllCategories() {
		out = append(out, results[c]...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].Category.Ordinal(), out[j].Category.Ordinal()
		if oi != oj {
			return oi < oj
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
