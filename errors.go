package ezh

import "tlog.app/go/errors"

var (
	ErrStreamNotOpen     = errors.New("stream not open")
	ErrNullDestination   = errors.New("null destination")
	ErrInsufficientSpace = errors.New("insufficient space")
	ErrInvalidOffset     = errors.New("invalid offset")
	ErrUnsupportedType   = errors.New("unsupported type")
)
