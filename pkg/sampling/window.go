package sampling

import (
	"fmt"
	"time"
)

// Window 是左开右闭区间 (Start, End]
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start time.Time, width time.Duration) Window {
	return Window{Start: start, End: start.Add(width)}
}

// Contains 不包含 Start, 包含 End
func (w Window) Contains(ts time.Time) bool {
	return ts.After(w.Start) && !ts.After(w.End)
}

// Next 返回紧接着的下一个窗口, 宽度不变
func (w Window) Next() Window {
	return Window{Start: w.End, End: w.End.Add(w.End.Sub(w.Start))}
}

func (w Window) String() string {
	return fmt.Sprintf("(%s, %s]", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
