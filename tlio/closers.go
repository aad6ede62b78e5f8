package tlio

import (
	"io"

	"tlog.app/go/errors"
)

type (
	CloserFunc func() error
)

// Close closes f if it's an io.Closer.
func Close(f interface{}) error {
	c, ok := f.(io.Closer)
	if !ok {
		return nil
	}

	return c.Close()
}

// CloseWrap closes f and sets *errp to the wrapped close error unless it's already set.
// Intended for defer.
func CloseWrap(f interface{}, name string, errp *error) { //nolint:gocritic
	e := Close(f)
	if *errp == nil && e != nil {
		*errp = errors.Wrap(e, "close %v", name)
	}
}

func (c CloserFunc) Close() error { return c() }
