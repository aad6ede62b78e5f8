package low

import "unsafe"

type eface struct {
	t, p unsafe.Pointer
}

// IsNil reports whether v is nil or holds a nil pointer of any type.
func IsNil(v interface{}) bool {
	e := *(*eface)(unsafe.Pointer(&v))

	return e.t == nil || e.p == nil
}

// Bytes is the in-memory representation of *p.
// The slice aliases p.
func Bytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}
