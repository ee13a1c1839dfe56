package keys

import (
	"errors"
	"fmt"
	"reflect"

	"nestmap/deep"
)

var (
	// ErrKeyType indicates a container key outside the expected form.
	ErrKeyType = errors.New("unsupported key type")

	// ErrValueType indicates a value that cannot become a key.
	ErrValueType = errors.New("unsupported value type")
)

// Strings converts the top level of c to string-keyed form. Nested
// containers are left as they are. A non-string key fails the call.
func Strings(c deep.Container) (map[string]any, error) {
	out := make(map[string]any, len(c))

	for k, v := range c {
		s, ok := k.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T key %v", ErrKeyType, k, k)
		}

		out[s] = v
	}

	return out, nil
}

// Anys is the inverse of Strings: it lifts a string-keyed map into a
// Container, top level only.
func Anys(m map[string]any) deep.Container {
	out := make(deep.Container, len(m))

	for k, v := range m {
		out[k] = v
	}

	return out
}

// Swap exchanges keys and values at the top level of c. Every value
// must be comparable so it can serve as a key; a non-comparable value
// fails the call. When two keys hold the same value, which key survives
// is unspecified.
func Swap(c deep.Container) (deep.Container, error) {
	out := make(deep.Container, len(c))

	for k, v := range c {
		if v != nil && !reflect.ValueOf(v).Comparable() {
			return nil, fmt.Errorf("%w: %T value under key %v", ErrValueType, v, k)
		}

		out[v] = k
	}

	return out, nil
}

// Prepend returns a fresh sequence with v at the head of seq. seq is
// never written to.
func Prepend(seq []any, v any) []any {
	out := make([]any, 0, len(seq)+1)
	out = append(out, v)

	return append(out, seq...)
}
