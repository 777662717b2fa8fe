package storage

import (
	"testing"
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

var baseTime = time.Date(2017, time.January, 3, 10, 0, 0, 0, time.UTC)

// 辅助函数：创建测试用的 Sample
func createTestSample(c model.Category, offset time.Duration, value float64) *model.Sample {
	return &model.Sample{
		Reading:    model.NewReading(baseTime.Add(offset), c, value),
		ObservedAt: baseTime.Add(offset - time.Minute),
	}
}

// TestMemoryStorage_Append 测试追加样本功能
func TestMemoryStorage_Append(t *testing.T) {
	t.Run("追加第一个样本", func(t *testing.T) {
		storage := NewMemoryStorage()
		sample := createTestSample(model.CategoryTemp, 5*time.Minute, 35.79)
		if err := storage.Append(sample); err != nil {
			t.Fatalf("追加样本失败: %v", err)
		}

		series, err := storage.Query(model.CategoryTemp)
		if err != nil {
			t.Fatalf("查询失败: %v", err)
		}
		if len(series.Samples) != 1 {
			t.Fatalf("期望 1 个样本，实际得到 %d 个", len(series.Samples))
		}
		if *series.Samples[0].Value != 35.79 {
			t.Errorf("期望值为 35.79，实际为 %f", *series.Samples[0].Value)
		}
		if series.Category != model.CategoryTemp {
			t.Errorf("期望分类 TEMP，实际为 %v", series.Category)
		}
	})

	t.Run("追加到不同的分类", func(t *testing.T) {
		storage := NewMemoryStorage()
		storage.Append(createTestSample(model.CategoryTemp, 5*time.Minute, 35))
		storage.Append(createTestSample(model.CategoryHR, 5*time.Minute, 70))

		temp, _ := storage.Query(model.CategoryTemp)
		hr, _ := storage.Query(model.CategoryHR)
		if len(temp.Samples) != 1 || *temp.Samples[0].Value != 35 {
			t.Error("TEMP 数据不正确")
		}
		if len(hr.Samples) != 1 || *hr.Samples[0].Value != 70 {
			t.Error("HR 数据不正确")
		}
	})

	t.Run("nil Sample 参数", func(t *testing.T) {
		storage := NewMemoryStorage()
		if err := storage.Append(nil); err != ErrNilSample {
			t.Errorf("期望错误 ErrNilSample，实际得到 %v", err)
		}
	})

	t.Run("未知分类", func(t *testing.T) {
		storage := NewMemoryStorage()
		sample := createTestSample(model.CategoryUnknown, 0, 1)
		if err := storage.Append(sample); err != ErrUnknownCategory {
			t.Errorf("期望错误 ErrUnknownCategory，实际得到 %v", err)
		}
	})

	t.Run("AppendAll 遇到错误停止", func(t *testing.T) {
		storage := NewMemoryStorage()
		samples := model.Samples{
			*createTestSample(model.CategoryHR, 5*time.Minute, 1),
			*createTestSample(model.CategoryUnknown, 10*time.Minute, 2),
			*createTestSample(model.CategoryHR, 15*time.Minute, 3),
		}
		if err := storage.AppendAll(samples); err != ErrUnknownCategory {
			t.Errorf("期望错误 ErrUnknownCategory，实际得到 %v", err)
		}
		series, _ := storage.Query(model.CategoryHR)
		if len(series.Samples) != 1 {
			t.Errorf("期望 1 个样本，实际得到 %d 个", len(series.Samples))
		}
	})
}

// TestMemoryStorage_Query 测试按分类查询
func TestMemoryStorage_Query(t *testing.T) {
	t.Run("结果按时间排序", func(t *testing.T) {
		storage := NewMemoryStorage()
		for _, offset := range []time.Duration{15, 5, 10} {
			storage.Append(createTestSample(model.CategorySpO2, offset*time.Minute, float64(offset)))
		}
		series, err := storage.Query(model.CategorySpO2)
		if err != nil {
			t.Fatalf("查询失败: %v", err)
		}
		for i, want := range []float64{5, 10, 15} {
			if *series.Samples[i].Value != want {
				t.Errorf("样本 %d: 期望值 %f，实际值 %f", i, want, *series.Samples[i].Value)
			}
		}
	})

	t.Run("查询不存在的分类", func(t *testing.T) {
		storage := NewMemoryStorage()
		if _, err := storage.Query(model.CategoryHR); err != ErrSeriesNotFound {
			t.Errorf("期望错误 ErrSeriesNotFound，实际得到 %v", err)
		}
	})
}

// TestMemoryStorage_QueryRange 测试范围查询功能
func TestMemoryStorage_QueryRange(t *testing.T) {
	storage := NewMemoryStorage()
	for i := 1; i <= 10; i++ {
		storage.Append(createTestSample(model.CategoryTemp, time.Duration(i)*5*time.Minute, float64(30+i)))
	}

	t.Run("包含边界样本", func(t *testing.T) {
		series, err := storage.QueryRange(model.CategoryTemp,
			baseTime.Add(10*time.Minute), baseTime.Add(20*time.Minute))
		if err != nil {
			t.Fatalf("查询失败: %v", err)
		}
		if len(series.Samples) != 3 {
			t.Fatalf("期望 3 个样本（包含边界），实际得到 %d 个", len(series.Samples))
		}
		if *series.Samples[0].Value != 32 || *series.Samples[2].Value != 34 {
			t.Errorf("边界样本值错误: %v", series.Samples.Strings())
		}
	})

	t.Run("查询空时间范围-无数据", func(t *testing.T) {
		series, err := storage.QueryRange(model.CategoryTemp,
			baseTime.Add(-time.Hour), baseTime.Add(-time.Minute))
		if err != nil {
			t.Fatalf("查询失败: %v", err)
		}
		if len(series.Samples) != 0 {
			t.Errorf("期望 0 个样本，实际得到 %d 个", len(series.Samples))
		}
	})

	t.Run("无效的时间范围-start > end", func(t *testing.T) {
		_, err := storage.QueryRange(model.CategoryTemp, baseTime, baseTime.Add(-time.Hour))
		if err != ErrTimeRange {
			t.Errorf("期望错误 ErrTimeRange，实际得到 %v", err)
		}
	})

	t.Run("查询不存在的分类", func(t *testing.T) {
		_, err := storage.QueryRange(model.CategoryHR, baseTime, baseTime.Add(time.Hour))
		if err != ErrSeriesNotFound {
			t.Errorf("期望错误 ErrSeriesNotFound，实际得到 %v", err)
		}
	})
}

// TestMemoryStorage_Delete 测试删除功能
func TestMemoryStorage_Delete(t *testing.T) {
	t.Run("删除存在的分类", func(t *testing.T) {
		storage := NewMemoryStorage()
		storage.Append(createTestSample(model.CategoryHR, 5*time.Minute, 60))
		if err := storage.Delete(model.CategoryHR); err != nil {
			t.Fatalf("删除失败: %v", err)
		}
		if _, err := storage.Query(model.CategoryHR); err != ErrSeriesNotFound {
			t.Errorf("期望错误 ErrSeriesNotFound，实际得到 %v", err)
		}
	})

	t.Run("删除不存在的分类-不报错", func(t *testing.T) {
		storage := NewMemoryStorage()
		if err := storage.Delete(model.CategoryHR); err != nil {
			t.Errorf("删除不存在的分类不应该报错，实际得到: %v", err)
		}
	})
}

func TestMemoryStorage_Categories(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Append(createTestSample(model.CategoryHR, 5*time.Minute, 60))
	storage.Append(createTestSample(model.CategoryTemp, 5*time.Minute, 36))
	if got := storage.Categories().String(); got != "TEMP,HR" {
		t.Errorf("Categories() = %v, want TEMP,HR", got)
	}
}
