package deep

import "errors"

var (
	// ErrInvalidPath indicates an empty path, or a Delete whose parent
	// path does not resolve to a container.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidMode indicates a ModeEnum value outside the defined set.
	ErrInvalidMode = errors.New("invalid write mode")

	// ErrMissingGroupField indicates a record passed to GroupBy that
	// lacks one of the grouping fields.
	ErrMissingGroupField = errors.New("missing group field")
)
