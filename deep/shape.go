package deep

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies the value found in a container cell. The write
// policy branches on this classification instead of on raw type tests,
// which keeps the policy table closed and exhaustive.
type ShapeEnum int

const (
	_ ShapeEnum = iota // skip zero value, use it as a default (invalid) value for ShapeEnum

	ShapeAbsent
	ShapeScalar
	ShapeSequence
	ShapeContainer

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// ShapeOf classifies a cell value. present reports whether the cell
// existed at all; when false the value is ignored.
//
// Only Container and []any are recognized as structured shapes. A
// string-keyed map, for example, is a scalar here; converting such
// inputs is a boundary concern (see package convert).
func ShapeOf(v any, present bool) ShapeEnum {
	if !present {
		return ShapeAbsent
	}

	switch v.(type) {
	case Container:
		return ShapeContainer
	case []any:
		return ShapeSequence
	default:
		return ShapeScalar
	}
}
