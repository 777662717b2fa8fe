package source

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrUnexpectedStatus  = errors.New("unexpected http status")
	ErrUnknownKind       = errors.New("unknown source kind")
)

func NewReadError(location string, err error) error {
	return fmt.Errorf("failed to read dataset %q: %w", location, err)
}

func NewDecodeError(location string, err error) error {
	return fmt.Errorf("failed to decode dataset %q: %w", location, err)
}
