package storage

import "errors"

var (
	ErrNilSample       = errors.New("sample cannot be nil")
	ErrUnknownCategory = errors.New("sample category is unknown")
	ErrSeriesNotFound  = errors.New("series not found")
	ErrTimeRange       = errors.New("invalid time range: start > end")
)
