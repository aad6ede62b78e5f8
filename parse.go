package ezh

import (
	"strconv"
	"strings"

	"tlog.app/go/errors"
)

// ParseKind parses a kind name as printed by Kind.String.
// A few long aliases (int32, float64, ...) are accepted too.
func ParseKind(s string) (Kind, error) {
	for k := KindBool; k < kindMax; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}

	switch s {
	case "int8":
		return KindInt8, nil
	case "int16":
		return KindInt16, nil
	case "int32":
		return KindInt32, nil
	case "int64":
		return KindInt64, nil
	case "uint8", "byte":
		return KindUint8, nil
	case "uint16":
		return KindUint16, nil
	case "uint32":
		return KindUint32, nil
	case "uint64":
		return KindUint64, nil
	case "float32":
		return KindFloat32, nil
	case "float64":
		return KindFloat64, nil
	}

	return KindInvalid, errors.Wrap(ErrUnsupportedType, "%q", s)
}

// ParseValue parses kind:literal, like i32:42 or f32:3.14.
func ParseValue(s string) (Value, error) {
	ks, lit, ok := strings.Cut(s, ":")
	if !ok {
		return Value{}, errors.New("%q: kind:value expected", s)
	}

	k, err := ParseKind(ks)
	if err != nil {
		return Value{}, err
	}

	switch k {
	case KindBool:
		v, err := strconv.ParseBool(lit)
		if err != nil {
			return Value{}, errors.Wrap(err, "%v", s)
		}

		return Bool(v), nil
	case KindFloat32, KindFloat64:
		v, err := strconv.ParseFloat(lit, 8*k.Size())
		if err != nil {
			return Value{}, errors.Wrap(err, "%v", s)
		}

		if k == KindFloat32 {
			return Float32(float32(v)), nil
		}

		return Float64(v), nil
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		v, err := strconv.ParseUint(lit, 0, 8*k.Size())
		if err != nil {
			return Value{}, errors.Wrap(err, "%v", s)
		}

		return Value{kind: k, bits: v}, nil
	}

	v, err := strconv.ParseInt(lit, 0, 8*k.Size())
	if err != nil {
		return Value{}, errors.Wrap(err, "%v", s)
	}

	return Value{kind: k, bits: uint64(v)}, nil
}

// ParseValues parses each arg with ParseValue.
func ParseValues(args []string) ([]Value, error) {
	vals := make([]Value, len(args))

	for i, a := range args {
		v, err := ParseValue(a)
		if err != nil {
			return nil, errors.Wrap(err, "arg #%d", i)
		}

		vals[i] = v
	}

	return vals, nil
}
