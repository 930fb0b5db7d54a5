package archive

import (
	"errors"
)

var (
	ErrBadHeader     = errors.New("malformed header")
	ErrNotCompressed = errors.New("path does not carry the compressed suffix")
)
