package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Vikt-B/sampling/pkg/model"
)

type DataFormat string

const (
	DataJSON DataFormat = "json"
	DataYAML DataFormat = "yaml"
	DataCSV  DataFormat = "csv"
)

// FormatFromName 根据文件名或 URL 路径的后缀判断数据格式
func FormatFromName(name string) (DataFormat, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return DataJSON, nil
	case ".yaml", ".yml":
		return DataYAML, nil
	case ".csv":
		return DataCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Body 是一次读取得到的原始数据
type Body struct {
	location string
	format   DataFormat
	data     []byte
}

func NewBody(location string, format DataFormat, data []byte) *Body {
	return &Body{
		location: location,
		format:   format,
		data:     data,
	}
}

// wireReading 中的空字段会被保留为缺失值, 由采样阶段过滤
type wireReading struct {
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Category  string   `json:"category" yaml:"category"`
	Value     *float64 `json:"value" yaml:"value"`
}

func (w *wireReading) toReading() (*model.Reading, error) {
	if w == nil {
		return nil, nil
	}
	r := &model.Reading{Value: w.Value}
	var err error
	if strings.TrimSpace(w.Timestamp) != "" {
		r.Timestamp, err = model.ParseTime(w.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", w.Timestamp, err)
		}
	}
	if strings.TrimSpace(w.Category) != "" {
		r.Category, err = model.ParseCategory(w.Category)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Readings 解码数据, 保持原始顺序. JSON/YAML 中的 null 元素解码为 nil 读数.
func (b *Body) Readings() ([]*model.Reading, error) {
	var wire []*wireReading
	var err error
	switch b.format {
	case DataJSON:
		err = json.Unmarshal(b.data, &wire)
	case DataYAML:
		err = yaml.Unmarshal(b.data, &wire)
	case DataCSV:
		wire, err = decodeCSV(b.data)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, b.format)
	}
	if err != nil {
		return nil, NewDecodeError(b.location, err)
	}

	readings := make([]*model.Reading, 0, len(wire))
	for i, w := range wire {
		r, err := w.toReading()
		if err != nil {
			return nil, NewDecodeError(b.location, fmt.Errorf("record %d: %w", i, err))
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// decodeCSV 读取 "timestamp,category,value" 格式, 第一行可以是表头
func decodeCSV(data []byte) ([]*wireReading, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []*wireReading
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 0 && strings.EqualFold(rec[0], "timestamp") {
			continue
		}
		w := &wireReading{Timestamp: rec[0], Category: rec[1]}
		if s := strings.TrimSpace(rec[2]); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value %q: %w", line+1, rec[2], err)
			}
			w.Value = &v
		}
		out = append(out, w)
	}
	return out, nil
}
