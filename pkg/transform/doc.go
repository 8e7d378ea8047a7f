// Package transform converts raw environment variable strings into typed
// configuration values.
//
// A transform is described by a Spec: either one of a fixed set of kinds
// (pass-through, integer, float, byte slice, symbol) or an arbitrary
// caller-supplied function. Transforms are pure: they take a string, return
// a value or an error, and never cache or mutate anything.
//
// # Usage
//
// The package-level specs cover the fixed kinds:
//
//	v, err := transform.Int.Apply("8080")   // 8080 (int)
//	v, err = transform.Float.Apply("0.75")  // 0.75 (float64)
//	v, err = transform.Bytes.Apply("abc")   // []byte("abc")
//	v, err = transform.Symbol.Apply("prod") // transform.Atom("prod")
//	v, err = transform.None.Apply("as-is")  // "as-is"
//
// Custom conversions use Fn:
//
//	spec := transform.Fn(func(raw string) (any, error) {
//		return time.ParseDuration(raw)
//	})
//	v, err := spec.Apply("30s") // 30 * time.Second
//
// # Error Handling
//
// Malformed numeric input surfaces the underlying strconv error unchanged,
// so callers keep access to *strconv.NumError details:
//
//	_, err := transform.Int.Apply("not-a-number")
//	var numErr *strconv.NumError
//	errors.As(err, &numErr) // true
//
// ErrUnknownKind and ErrNilFunc report misconfigured specs rather than bad
// input values.
package transform
