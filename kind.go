package parg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies the primitive type a value-taking argument produces.
// The set is closed: every stored value holds exactly one of these kinds,
// and typed retrieval is gated on the declared kind instead of an open
// runtime downcast.
type Kind uint8

const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindFloat32
	KindFloat64
	KindBool
	KindRune
	KindString
)

var kindNames = [...]string{
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindUint:    "uint",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindInt:     "int",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindRune:    "rune",
	KindString:  "string",
}

// kindTypes maps each kind to its native Go type. The reflect.Type acts
// as the type identity sample compared against the caller's requested
// type during retrieval.
var kindTypes = [...]reflect.Type{
	KindUint8:   reflect.TypeOf(uint8(0)),
	KindUint16:  reflect.TypeOf(uint16(0)),
	KindUint32:  reflect.TypeOf(uint32(0)),
	KindUint64:  reflect.TypeOf(uint64(0)),
	KindUint:    reflect.TypeOf(uint(0)),
	KindInt8:    reflect.TypeOf(int8(0)),
	KindInt16:   reflect.TypeOf(int16(0)),
	KindInt32:   reflect.TypeOf(int32(0)),
	KindInt64:   reflect.TypeOf(int64(0)),
	KindInt:     reflect.TypeOf(int(0)),
	KindFloat32: reflect.TypeOf(float32(0)),
	KindFloat64: reflect.TypeOf(float64(0)),
	KindBool:    reflect.TypeOf(false),
	KindRune:    reflect.TypeOf(rune(0)),
	KindString:  reflect.TypeOf(""),
}

// String returns the canonical kind name (e.g. "uint8", "rune").
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) valid() bool {
	return int(k) < len(kindNames)
}

// goType returns the kind's native Go type.
func (k Kind) goType() reflect.Type {
	if int(k) < len(kindTypes) {
		return kindTypes[k]
	}
	return nil
}

// ParseKind resolves a kind from its textual name. Matching is
// case-insensitive and "char" is accepted as an alias for "rune".
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "char" {
		return KindRune, nil
	}
	for k, kn := range kindNames {
		if kn == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown value kind %q", name)
}

// parse converts a raw token into the kind's native Go type using the
// kind's canonical text rule: base-10 integers, strconv.ParseBool
// literals for bool, exactly one character for rune, verbatim for string.
func (k Kind) parse(token string) (any, error) {
	switch k {
	case KindUint8:
		v, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return nil, err
		}
		return uint8(v), nil
	case KindUint16:
		v, err := strconv.ParseUint(token, 10, 16)
		if err != nil {
			return nil, err
		}
		return uint16(v), nil
	case KindUint32:
		v, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, err
		}
		return uint32(v), nil
	case KindUint64:
		return strconv.ParseUint(token, 10, 64)
	case KindUint:
		v, err := strconv.ParseUint(token, 10, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return uint(v), nil
	case KindInt8:
		v, err := strconv.ParseInt(token, 10, 8)
		if err != nil {
			return nil, err
		}
		return int8(v), nil
	case KindInt16:
		v, err := strconv.ParseInt(token, 10, 16)
		if err != nil {
			return nil, err
		}
		return int16(v), nil
	case KindInt32:
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, err
		}
		return int32(v), nil
	case KindInt64:
		return strconv.ParseInt(token, 10, 64)
	case KindInt:
		v, err := strconv.ParseInt(token, 10, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return int(v), nil
	case KindFloat32:
		v, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	case KindFloat64:
		return strconv.ParseFloat(token, 64)
	case KindBool:
		return strconv.ParseBool(token)
	case KindRune:
		runes := []rune(token)
		if len(runes) != 1 {
			return nil, fmt.Errorf("expected exactly one character, got %d", len(runes))
		}
		return runes[0], nil
	case KindString:
		return token, nil
	}
	return nil, fmt.Errorf("unknown value kind %q", k)
}

// format renders a value of this kind in its native textual form.
// The result round-trips through parse for every kind.
func (k Kind) format(v any) string {
	if v == nil {
		return ""
	}
	switch k {
	case KindRune:
		if r, ok := v.(rune); ok {
			return string(r)
		}
	case KindFloat32:
		if f, ok := v.(float32); ok {
			return strconv.FormatFloat(float64(f), 'f', -1, 32)
		}
	case KindFloat64:
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return fmt.Sprintf("%v", v)
}

// coerce converts an any-typed value to the kind's native type. It is
// used by the manifest loader, where TOML decodes all integers as int64,
// and by the default-acceptance check. Only same-family conversions are
// performed (numeric to numeric with overflow checks); strings and bools
// never convert across families.
func (k Kind) coerce(v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot use nil as %s", k)
	}
	t := k.goType()
	rv := reflect.ValueOf(v)
	if rv.Type() == t {
		return v, nil
	}
	// TOML has no character type, so rune defaults arrive as strings.
	if k == KindRune && rv.Kind() == reflect.String {
		return k.parse(rv.String())
	}

	out := reflect.New(t).Elem()
	switch {
	case isIntRefl(rv.Kind()) && isIntRefl(t.Kind()):
		i := rv.Int()
		if out.OverflowInt(i) {
			return nil, fmt.Errorf("value %d overflows %s", i, k)
		}
		out.SetInt(i)
	case isIntRefl(rv.Kind()) && isUintRefl(t.Kind()):
		i := rv.Int()
		if i < 0 {
			return nil, fmt.Errorf("negative value %d for unsigned kind %s", i, k)
		}
		if out.OverflowUint(uint64(i)) {
			return nil, fmt.Errorf("value %d overflows %s", i, k)
		}
		out.SetUint(uint64(i))
	case isUintRefl(rv.Kind()) && isUintRefl(t.Kind()):
		u := rv.Uint()
		if out.OverflowUint(u) {
			return nil, fmt.Errorf("value %d overflows %s", u, k)
		}
		out.SetUint(u)
	case isUintRefl(rv.Kind()) && isIntRefl(t.Kind()):
		u := rv.Uint()
		if u > uint64(^uint64(0)>>1) || out.OverflowInt(int64(u)) {
			return nil, fmt.Errorf("value %d overflows %s", u, k)
		}
		out.SetInt(int64(u))
	case isFloatRefl(rv.Kind()) && isFloatRefl(t.Kind()):
		f := rv.Float()
		if out.OverflowFloat(f) {
			return nil, fmt.Errorf("value %v overflows %s", f, k)
		}
		out.SetFloat(f)
	case isIntRefl(rv.Kind()) && isFloatRefl(t.Kind()):
		out.SetFloat(float64(rv.Int()))
	case isUintRefl(rv.Kind()) && isFloatRefl(t.Kind()):
		out.SetFloat(float64(rv.Uint()))
	default:
		return nil, fmt.Errorf("cannot convert %T to %s", v, k)
	}
	return out.Interface(), nil
}

func isIntRefl(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintRefl(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloatRefl(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
