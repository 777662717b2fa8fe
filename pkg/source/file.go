package source

import (
	"context"
	"os"

	"github.com/Vikt-B/sampling/pkg/model"
)

// FileSource 从本地文件读取数据集, 格式由后缀决定
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Load(context.Context) ([]*model.Reading, error) {
	format, err := FormatFromName(f.path)
	if err != nil {
		return nil, NewReadError(f.path, err)
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, NewReadError(f.path, err)
	}
	return NewBody(f.path, format, data).Readings()
}
