package model

import (
	"fmt"
	"sort"
	"strings"
)

// Category 是读数的分类, 声明顺序即排序顺序
type Category int

const (
	CategoryUnknown Category = iota
	CategoryTemp
	CategorySpO2
	CategoryHR
)

var categoryNames = map[Category]string{
	CategoryTemp: "TEMP",
	CategorySpO2: "SPO2",
	CategoryHR:   "HR",
}

// AllCategories 按声明顺序返回全部已知分类
func AllCategories() Categories {
	return Categories{CategoryTemp, CategorySpO2, CategoryHR}
}

// ParseCategory 按名称解析分类, 大小写不敏感
func ParseCategory(name string) (Category, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for c, s := range categoryNames {
		if s == n {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category %q", name)
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Ordinal 返回分类的声明序号, 未知分类排在最后
func (c Category) Ordinal() int {
	if !c.Valid() {
		return len(categoryNames) + 1
	}
	return int(c)
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return ""
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Categories []Category

func (cs Categories) Sorted() Categories {
	sorted := make(Categories, len(cs))
	copy(sorted, cs)
	sort.Sort(sorted)
	return sorted
}

// 返回类似 "TEMP,SPO2" 的字符串
func (cs Categories) String() string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (cs Categories) Contains(c Category) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// 实现 sort.Interface 接口

func (cs Categories) Len() int {
	return len(cs)
}

func (cs Categories) Less(i, j int) bool {
	return cs[i].Ordinal() < cs[j].Ordinal()
}

func (cs Categories) Swap(i, j int) {
	cs[i], cs[j] = cs[j], cs[i]
}
