package ezh

import (
	"unsafe"

	"tlog.app/go/errors"
)

// WriteToBuffer writes vals into buf starting at off and returns the new offset.
// buf is never resized. If vals don't fit buf is left untouched
// and ErrInsufficientSpace is returned.
func (e Encoder) WriteToBuffer(buf []byte, off int, vals ...Value) (int, error) {
	if off < 0 {
		return off, errors.Wrap(ErrInvalidOffset, "%d", off)
	}

	err := check(vals)
	if err != nil {
		return off, err
	}

	n := Size(vals...)

	if off > len(buf) || n > len(buf)-off {
		return off, errors.Wrap(ErrInsufficientSpace, "need %d bytes at offset %d of %d", n, off, len(buf))
	}

	if n == 0 {
		return off, nil
	}

	_, err = e.WriteToRawMemory(unsafe.Pointer(&buf[off]), vals...)
	if err != nil {
		return off, err
	}

	return off + n, nil
}
