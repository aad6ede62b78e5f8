package ezh

import (
	"io"
	"io/fs"

	"tlog.app/go/errors"

	"github.com/icyveins7/ezh/low"
)

type (
	// ErrStater is a stream that can report it is in an error state.
	ErrStater interface {
		Err() error
	}

	stater interface {
		Stat() (fs.FileInfo, error)
	}
)

// WriteToStream writes vals to w with a single Write call and returns w.
// ErrStreamNotOpen is returned before anything is written
// if w is nil, is a closed file or reports an error state.
// Other unusable streams (a file opened read-only) are only detected by Write,
// which is still all or nothing for the values of one call.
// No values is a valid call and leaves w untouched.
func (e Encoder) WriteToStream(w io.Writer, vals ...Value) (io.Writer, error) {
	err := checkStream(w)
	if err != nil {
		return w, err
	}

	err = check(vals)
	if err != nil {
		return w, err
	}

	if len(vals) == 0 {
		return w, nil
	}

	var arr [128]byte

	b := e.appendValues(arr[:0], vals)

	n, err := w.Write(b)
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return w, errors.Wrap(err, "write %d bytes", len(b))
	}

	return w, nil
}

func checkStream(w io.Writer) error {
	if low.IsNil(w) {
		return ErrStreamNotOpen
	}

	if s, ok := w.(ErrStater); ok {
		if err := s.Err(); err != nil {
			return errors.Wrap(ErrStreamNotOpen, "%v", err)
		}
	}

	if s, ok := w.(stater); ok {
		if _, err := s.Stat(); err != nil {
			return errors.Wrap(ErrStreamNotOpen, "stat: %v", err)
		}
	}

	return nil
}
