package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"nestmap/deep"
)

// ErrUnsupported indicates an input that cannot become a Container.
var ErrUnsupported = errors.New("unsupported record type")

// FromStruct reflects a struct (or pointer to struct) into a Container.
// Exported fields become entries keyed by field name, or by the name
// from a `nestmap:"..."` tag; a tag of "-" skips the field. Nested
// structs, maps, and slices are converted recursively. time.Time is
// kept as a scalar.
func FromStruct(v any) (deep.Container, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil pointer", ErrUnsupported)
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}

	return structValue(rv), nil
}

func structValue(rv reflect.Value) deep.Container {
	rt := rv.Type()
	out := make(deep.Container, rt.NumField())

	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("nestmap"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}

			if tagName != "" {
				name = tagName
			}
		}

		out[name] = fieldValue(rv.Field(i))
	}

	return out
}

// fieldValue converts one reflected value. Anything without a
// structured conversion falls through as a scalar.
func fieldValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return fieldValue(rv.Elem())

	case reflect.Struct:
		if rv.Type() == reflect.TypeFor[time.Time]() {
			return rv.Interface()
		}
		return structValue(rv)

	case reflect.Map:
		out := make(deep.Container, rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			out[iter.Key().Interface()] = fieldValue(iter.Value())
		}
		return out

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface() // []byte stays a scalar blob
		}
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = fieldValue(rv.Index(i))
		}
		return out

	default:
		return rv.Interface()
	}
}
