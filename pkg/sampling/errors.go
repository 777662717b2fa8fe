package sampling

import "errors"

// 错误信息需要和已有的调用方保持一致, 不要修改
var (
	ErrMissingStartTime = errors.New("Start of sample time not found")
	ErrMissingReadings  = errors.New("Measurements not found")
	ErrInvalidWindow    = errors.New("window duration must be positive")
)
