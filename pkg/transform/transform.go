package transform

import (
	"errors"
	"strconv"
)

// Kind identifies one of the fixed transform kinds.
type Kind string

const (
	// KindNone passes the raw string through unchanged.
	KindNone Kind = "none"
	// KindInt parses the raw string as a base-10 integer.
	KindInt Kind = "int"
	// KindFloat parses the raw string as a floating-point literal.
	KindFloat Kind = "float"
	// KindBytes returns the raw bytes of the string.
	KindBytes Kind = "bytes"
	// KindSymbol converts the raw string into an Atom.
	KindSymbol Kind = "symbol"
	// KindFunc delegates conversion to a caller-supplied function.
	KindFunc Kind = "func"
)

// Func is a caller-supplied transform. It receives the raw string and
// returns the value to store; the result is not validated further.
type Func func(string) (any, error)

// Atom is the value produced by the symbol transform: an identifier-like
// string interned as its own type, so stored symbols stay distinguishable
// from plain string values. Atoms are comparable and usable as map keys.
type Atom string

// Spec describes how a raw environment string becomes a typed value.
// The zero value passes strings through unchanged. Func is consulted
// only when Kind is KindFunc.
type Spec struct {
	Kind Kind
	Func Func
}

// Predefined specs for the fixed transform kinds.
var (
	None   = Spec{Kind: KindNone}
	Int    = Spec{Kind: KindInt}
	Float  = Spec{Kind: KindFloat}
	Bytes  = Spec{Kind: KindBytes}
	Symbol = Spec{Kind: KindSymbol}
)

// Fn returns a Spec that applies the supplied function.
func Fn(f Func) Spec {
	return Spec{Kind: KindFunc, Func: f}
}

// Apply converts raw according to the Spec's kind.
//
// Parse failures from the int and float kinds are returned exactly as
// strconv produced them, so callers can inspect the underlying
// *strconv.NumError; they are deliberately not wrapped in package
// sentinels. Function transforms return whatever the function returns.
func (s Spec) Apply(raw string) (any, error) {
	switch s.Kind {
	case KindNone, "":
		return raw, nil
	case KindInt:
		return strconv.Atoi(raw)
	case KindFloat:
		return strconv.ParseFloat(raw, 64)
	case KindBytes:
		return []byte(raw), nil
	case KindSymbol:
		return Atom(raw), nil
	case KindFunc:
		if s.Func == nil {
			return nil, ErrNilFunc
		}
		return s.Func(raw)
	default:
		return nil, errors.Join(ErrUnknownKind, errors.New(string(s.Kind)))
	}
}

// ParseKind resolves a textual transform name into a Kind. It accepts the
// canonical kind names plus the aliases "", "string", "integer" and
// "binary". Function transforms carry Go values and have no textual form,
// so "func" is rejected along with unknown names.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", "none", "string":
		return KindNone, nil
	case "int", "integer":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "bytes", "binary":
		return KindBytes, nil
	case "symbol":
		return KindSymbol, nil
	default:
		return "", errors.Join(ErrUnknownKind, errors.New(name))
	}
}
