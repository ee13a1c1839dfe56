package convert

import (
	"errors"
	"fmt"
	"strconv"

	"nestmap/deep"
)

// ErrKeyCollision indicates two distinct keys that render to the same
// string during ToStringMap.
var ErrKeyCollision = errors.New("key collision")

// FromStringMap lifts a decoded JSON/YAML document into a Container
// tree. Unlike keys.Anys this recurses: nested string-keyed maps,
// any-keyed maps, and sequences are all converted.
func FromStringMap(m map[string]any) deep.Container {
	out := make(deep.Container, len(m))

	for k, v := range m {
		out[k] = fromDocValue(v)
	}

	return out
}

// FromDoc converts any decoded document value: string-keyed maps
// become Containers, sequences are converted element-wise, scalars
// pass through.
func FromDoc(v any) any {
	return fromDocValue(v)
}

func fromDocValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return FromStringMap(tv)
	case deep.Container:
		out := make(deep.Container, len(tv))
		for k, val := range tv {
			out[k] = fromDocValue(val)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			out[i] = fromDocValue(val)
		}
		return out
	default:
		return v
	}
}

// ToStringMap renders a Container tree string-keyed so it can be passed
// to an encoder. Non-string keys are rendered with strconv/fmt, which
// keeps grouping trees keyed by numbers or booleans encodable. Two
// distinct keys rendering to the same string fail with ErrKeyCollision.
func ToStringMap(c deep.Container) (map[string]any, error) {
	out := make(map[string]any, len(c))

	for k, v := range c {
		s := keyString(k)
		if _, taken := out[s]; taken {
			return nil, fmt.Errorf("%w: %q", ErrKeyCollision, s)
		}

		conv, err := toDocValue(v)
		if err != nil {
			return nil, err
		}

		out[s] = conv
	}

	return out, nil
}

// ToDoc renders any value the way ToStringMap renders containers:
// containers become string-keyed maps, sequences are converted
// element-wise, scalars pass through.
func ToDoc(v any) (any, error) {
	return toDocValue(v)
}

func toDocValue(v any) (any, error) {
	switch tv := v.(type) {
	case deep.Container:
		return ToStringMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			conv, err := toDocValue(val)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	default:
		return v, nil
	}
}

func keyString(k deep.Key) string {
	switch tk := k.(type) {
	case string:
		return tk
	case int:
		return strconv.Itoa(tk)
	case int64:
		return strconv.FormatInt(tk, 10)
	case bool:
		return strconv.FormatBool(tk)
	default:
		return fmt.Sprint(tk)
	}
}
