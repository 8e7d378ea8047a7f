package transform

import "errors"

var (
	// ErrUnknownKind is returned when a Spec carries a kind outside the fixed set.
	ErrUnknownKind = errors.New("unknown transform kind")

	// ErrNilFunc is returned when a function transform has no function attached.
	ErrNilFunc = errors.New("nil transform function")
)
