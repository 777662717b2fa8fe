package source

import (
	"context"
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

// ReferenceStart 是参考数据集的采样起点
var ReferenceStart = time.Date(2017, time.January, 3, 10, 0, 0, 0, time.UTC)

// ReferenceSource 返回内置的参考数据集
type ReferenceSource struct{}

func (ReferenceSource) Load(context.Context) ([]*model.Reading, error) {
	return Reference(), nil
}

// Reference 每次返回一份新的参考读数, 调用方可以随意修改
func Reference() []*model.Reading {
	at := func(h, m, s int) time.Time {
		return time.Date(2017, time.January, 3, h, m, s, 0, time.UTC)
	}
	data := []model.Reading{
		model.NewReading(at(10, 4, 45), model.CategoryTemp, 35.79),
		model.NewReading(at(10, 1, 18), model.CategorySpO2, 98.78),
		model.NewReading(at(10, 9, 7), model.CategoryTemp, 35.01),
		model.NewReading(at(10, 3, 34), model.CategorySpO2, 96.49),
		model.NewReading(at(10, 2, 1), model.CategoryTemp, 35.82),
		model.NewReading(at(10, 5, 0), model.CategorySpO2, 97.17),
		model.NewReading(at(10, 5, 1), model.CategorySpO2, 95.08),
	}
	out := make([]*model.Reading, len(data))
	for i := range data {
		out[i] = &data[i]
	}
	return out
}
