package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vikt-B/sampling/pkg/config"
	"github.com/Vikt-B/sampling/pkg/model"
)

// Source 提供待采样的原始读数
type Source interface {
	Load(ctx context.Context) ([]*model.Reading, error)
}

// New 根据配置创建数据源
func New(s config.SourceSettings) (Source, error) {
	switch strings.ToLower(s.Kind) {
	case "", config.SourceReference:
		return ReferenceSource{}, nil
	case config.SourceFile:
		return NewFileSource(s.Path), nil
	case config.SourceHTTP:
		return NewHTTPSource(s.URL, s.Timeout), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}
