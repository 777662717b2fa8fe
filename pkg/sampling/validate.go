package sampling

import (
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

// Validate 在采样前检查调用参数. 单个读数是否为空不在这里检查, 分区时会被过滤掉.
func Validate(start time.Time, readings []*model.Reading) error {
	if start.IsZero() {
		return ErrMissingStartTime
	}
	if len(readings) == 0 {
		return ErrMissingReadings
	}
	return nil
}
