package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Vikt-B/sampling/pkg/model"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write 按给定格式输出采样结果
func Write(w io.Writer, f Format, samples model.Samples) error {
	switch f {
	case FormatText, "":
		return WriteText(w, samples)
	case FormatJSON:
		return WriteJSON(w, samples)
	case FormatYAML:
		return WriteYAML(w, samples)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteText 每个样本一行 "时间,分类,值"; 字段不完整的样本输出空行
func WriteText(w io.Writer, samples model.Samples) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		bw.WriteString(s.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type record struct {
	Timestamp  string   `json:"timestamp" yaml:"timestamp"`
	Category   string   `json:"category" yaml:"category"`
	Value      *float64 `json:"value" yaml:"value"`
	ObservedAt string   `json:"observed_at,omitempty" yaml:"observed_at,omitempty"`
}

func records(samples model.Samples) []record {
	out := make([]record, 0, len(samples))
	for _, s := range samples {
		out = append(out, record{
			Timestamp:  formatTime(s.Timestamp),
			Category:   s.Category.String(),
			Value:      s.Value,
			ObservedAt: formatTime(s.ObservedAt),
		})
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.TimeLayout)
}

func WriteJSON(w io.Writer, samples model.Samples) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(samples))
}

func WriteYAML(w io.Writer, samples model.Samples) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(samples)); err != nil {
		return err
	}
	return enc.Close()
}
