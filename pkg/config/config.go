package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sosodev/duration"

	"github.com/Vikt-B/sampling/pkg/model"
	"github.com/Vikt-B/sampling/pkg/render"
)

type Config struct {
	Sampling SamplingConfig `yaml:"sampling" toml:"sampling"`
	Source   SourceConfig   `yaml:"source" toml:"source"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

type SamplingConfig struct {
	Start      string   `yaml:"start" toml:"start"`
	Categories []string `yaml:"categories" toml:"categories"`
}

type SourceConfig struct {
	Kind    string `yaml:"kind" toml:"kind"`
	Path    string `yaml:"path" toml:"path"`
	URL     string `yaml:"url" toml:"url"`
	Timeout string `yaml:"timeout" toml:"timeout"`
}

type OutputConfig struct {
	Format   string `yaml:"format" toml:"format"`
	Category string `yaml:"category" toml:"category"`
	From     string `yaml:"from" toml:"from"`
	To       string `yaml:"to" toml:"to"`
}

type LogConfig struct {
	Level   string `yaml:"level" toml:"level"`
	Format  string `yaml:"format" toml:"format"`
	NoColor bool   `yaml:"no_color" toml:"no_color"`
}

func NewConfig() *Config {
	return &Config{}
}

const (
	SourceReference = "reference"
	SourceFile      = "file"
	SourceHTTP      = "http"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	DefaultSourceKind    = SourceReference
	DefaultSourceTimeout = 10 * time.Second
	DefaultOutputFormat  = render.FormatText
	DefaultLogLevel      = slog.LevelInfo
	DefaultLogFormat     = LogFormatText
)

func (c *Config) Validate() error {
	if c.Sampling.Start != "" {
		if _, err := model.ParseTime(c.Sampling.Start); err != nil {
			return newFieldError("sampling.start", c.Sampling.Start, err)
		}
	}
	for i, name := range c.Sampling.Categories {
		if _, err := model.ParseCategory(name); err != nil {
			return fmt.Errorf("sampling.categories[%d]: %w", i, err)
		}
	}

	switch strings.ToLower(c.Source.Kind) {
	case "", SourceReference:
	case SourceFile:
		if c.Source.Path == "" {
			return fmt.Errorf("source %q: path is required", SourceFile)
		}
	case SourceHTTP:
		if c.Source.URL == "" {
			return fmt.Errorf("source %q: url is required", SourceHTTP)
		}
	default:
		return fmt.Errorf("source: unknown kind %q", c.Source.Kind)
	}
	if c.Source.Timeout != "" {
		d, err := duration.Parse(c.Source.Timeout)
		if err != nil {
			return newFieldError("source.timeout", c.Source.Timeout, err)
		}
		if d.ToTimeDuration() <= 0 {
			return fmt.Errorf("source.timeout (%s) must be positive", c.Source.Timeout)
		}
	}

	if c.Output.Format != "" {
		if _, err := render.ParseFormat(c.Output.Format); err != nil {
			return newFieldError("output.format", c.Output.Format, err)
		}
	}
	if c.Output.Category != "" {
		if _, err := model.ParseCategory(c.Output.Category); err != nil {
			return newFieldError("output.category", c.Output.Category, err)
		}
	}
	var from, to time.Time
	var err error
	if c.Output.From != "" {
		if from, err = model.ParseTime(c.Output.From); err != nil {
			return newFieldError("output.from", c.Output.From, err)
		}
	}
	if c.Output.To != "" {
		if to, err = model.ParseTime(c.Output.To); err != nil {
			return newFieldError("output.to", c.Output.To, err)
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return fmt.Errorf("output range: from (%s) must be <= to (%s)", c.Output.From, c.Output.To)
	}

	if c.Log.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return newFieldError("log.level", c.Log.Level, err)
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log: unknown format %q", c.Log.Format)
	}
	return nil
}

// Settings 是填充默认值并完成类型转换后的配置
type Settings struct {
	Start      time.Time
	Categories model.Categories
	Source     SourceSettings
	Output     OutputSettings
	Log        LogSettings
}

type SourceSettings struct {
	Kind    string
	Path    string
	URL     string
	Timeout time.Duration
}

type OutputSettings struct {
	Format   render.Format
	Category model.Category
	From     time.Time
	To       time.Time
}

type LogSettings struct {
	Level   slog.Level
	Format  string
	NoColor bool
}

// Process 把已校验的配置转换成 Settings, 未设置的字段使用默认值.
// 需要先调用 Validate, 无法解析的字段会被当作未设置.
func (c *Config) Process() Settings {
	s := Settings{
		Source: SourceSettings{
			Kind:    strings.ToLower(c.Source.Kind),
			Path:    c.Source.Path,
			URL:     c.Source.URL,
			Timeout: DefaultSourceTimeout,
		},
		Output: OutputSettings{Format: DefaultOutputFormat},
		Log: LogSettings{
			Level:   DefaultLogLevel,
			Format:  strings.ToLower(c.Log.Format),
			NoColor: c.Log.NoColor,
		},
	}
	if c.Sampling.Start != "" {
		s.Start, _ = model.ParseTime(c.Sampling.Start)
	}
	for _, name := range c.Sampling.Categories {
		if cat, err := model.ParseCategory(name); err == nil && !s.Categories.Contains(cat) {
			s.Categories = append(s.Categories, cat)
		}
	}
	if len(s.Categories) > 0 {
		s.Categories = s.Categories.Sorted()
	}

	if s.Source.Kind == "" {
		s.Source.Kind = DefaultSourceKind
	}
	if c.Source.Timeout != "" {
		if d, err := duration.Parse(c.Source.Timeout); err == nil {
			s.Source.Timeout = d.ToTimeDuration()
		}
	}

	if f, err := render.ParseFormat(c.Output.Format); err == nil && c.Output.Format != "" {
		s.Output.Format = f
	}
	if c.Output.Category != "" {
		s.Output.Category, _ = model.ParseCategory(c.Output.Category)
	}
	if c.Output.From != "" {
		s.Output.From, _ = model.ParseTime(c.Output.From)
	}
	if c.Output.To != "" {
		s.Output.To, _ = model.ParseTime(c.Output.To)
	}

	if c.Log.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err == nil {
			s.Log.Level = level
		}
	}
	if s.Log.Format == "" {
		s.Log.Format = DefaultLogFormat
	}
	return s
}
