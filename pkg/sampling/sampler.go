package sampling

import (
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

// WindowDuration 是固定的采样窗口宽度
const WindowDuration = 5 * time.Minute

type Sampler struct {
	window     time.Duration
	categories model.Categories
	logger     *slog.Logger
}

type Option func(*Sampler)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCategories 只对给定的分类采样, 输出顺序仍然是声明顺序
func WithCategories(categories model.Categories) Option {
	return func(s *Sampler) {
		if len(categories) > 0 {
			s.categories = categories.Sorted()
		}
	}
}

func withWindow(window time.Duration) Option {
	return func(s *Sampler) {
		s.window = window
	}
}

func New(opts ...Option) (*Sampler, error) {
	s := &Sampler{
		window:     WindowDuration,
		categories: model.AllCategories(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.window <= 0 {
		return nil, ErrInvalidWindow
	}
	return s, nil
}

// Run 校验参数, 按分类采样, 然后合并为按 (分类, 时间) 排序的结果
func (s *Sampler) Run(start time.Time, readings []*model.Reading) (model.Samples, error) {
	results, err := s.Sample(start, readings)
	if err != nil {
		return nil, err
	}
	return Assemble(results), nil
}

// Sample 返回每个分类的采样结果, 没有输出的分类不会出现在 map 中
func (s *Sampler) Sample(start time.Time, readings []*model.Reading) (map[model.Category]model.Samples, error) {
	if err := Validate(start, readings); err != nil {
		return nil, err
	}
	partitions := Partition(readings, s.categories)
	results := make(map[model.Category]model.Samples, len(partitions))
	for _, c := range s.categories {
		rs := partitions.Get(c)
		if len(rs) == 0 {
			continue
		}
		samples := s.SampleCategory(rs, start)
		s.logger.Debug("sampled category",
			"category", c.String(),
			"readings", len(rs),
			"samples", len(samples))
		if len(samples) > 0 {
			results[c] = samples
		}
	}
	return results, nil
}

// SampleCategory 对单个分类的读数做降采样.
// 每个窗口 (start, end] 内取时间最晚的读数, 时间戳改为 end; 只要还有读数晚于 end,
// 窗口就向后移动一个固定宽度, 即使当前窗口为空.
func (s *Sampler) SampleCategory(readings []model.Reading, start time.Time) model.Samples {
	var samples model.Samples
	w := NewWindow(start, s.window)
	for {
		if latest, ok := latestIn(readings, w); ok {
			samples = samples.Append(model.Sample{
				Reading: model.Reading{
					Timestamp: w.End,
					Category:  latest.Category,
					Value:     latest.Value,
				},
				ObservedAt: latest.Timestamp,
			})
		}
		if !anyAfter(readings, w.End) {
			break
		}
		w = w.Next()
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})
	return samples
}

// latestIn 按时间戳取窗口内最晚的读数, 时间戳相同时保留先出现的那个
func latestIn(readings []model.Reading, w Window) (model.Reading, bool) {
	var latest model.Reading
	found := false
	for _, r := range readings {
		if !w.Contains(r.Timestamp) {
			continue
		}
		if !found || r.Timestamp.After(latest.Timestamp) {
			latest = r
			found = true
		}
	}
	return latest, found
}

func anyAfter(readings []model.Reading, ts time.Time) bool {
	for _, r := range readings {
		if r.Timestamp.After(ts) {
			return true
		}
	}
	return false
}
