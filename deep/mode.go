package deep

//go:generate go tool stringer -type=ModeEnum -output=mode_string.go

// ModeEnum selects the write policy applied by Put at the final path
// element and at intermediate conflicts.
type ModeEnum int

const (
	_ ModeEnum = iota // skip zero value, use it as a default (invalid) value for ModeEnum

	// ModeOverwrite replaces whatever the final cell holds.
	ModeOverwrite
	// ModeAccumulate grows a sequence at the final cell, newest first.
	ModeAccumulate

	// ModeTotal is a constant that represents the total number of modes defined
	ModeTotal = int(iota)
)

func (m ModeEnum) valid() bool {
	return m == ModeOverwrite || m == ModeAccumulate
}
