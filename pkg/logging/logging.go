package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"github.com/Vikt-B/sampling/pkg/config"
)

// New 创建日志记录器: text 格式使用 tint 彩色输出, json 格式使用 slog 自带的 JSON handler
func New(w io.Writer, s config.LogSettings) *slog.Logger {
	if s.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: s.Level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      s.Level,
		TimeFormat: time.TimeOnly,
		NoColor:    s.NoColor,
	}))
}
