package storage

import (
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

type Storage interface {
	Append(s *model.Sample) error

	Query(c model.Category) (model.Series, error)

	QueryRange(c model.Category, start, end time.Time) (model.Series, error)

	Delete(c model.Category) error
}
