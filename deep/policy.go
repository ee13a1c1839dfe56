package deep

// next computes the replacement for a container cell during a path walk.
// cur and present describe the cell as found, v is the value being
// written, and final reports whether the walk is at the last path
// element. The caller has already validated mode.
//
// Overwrite: the final cell takes v as-is; an intermediate cell keeps an
// existing container and discards anything else for a fresh branch.
//
// Accumulate: the final cell becomes a sequence with v at the head —
// prepended to an existing sequence, wrapped around any other present
// value, or a singleton when the cell was absent. Intermediate handling
// matches Overwrite: only a container survives as a descent target.
func next(mode ModeEnum, cur any, present bool, v any, final bool) any {
	shape := ShapeOf(cur, present)

	if !final {
		if shape == ShapeContainer {
			return cur
		}
		return Container{}
	}

	if mode == ModeOverwrite {
		return v
	}

	switch shape {
	case ShapeSequence:
		return prepend(cur.([]any), v)
	case ShapeAbsent:
		return []any{v}
	default: // ShapeScalar, ShapeContainer
		return []any{v, cur}
	}
}

// prepend returns a fresh sequence with v at the head. seq is never
// written to, so sequences inside an input container stay intact.
func prepend(seq []any, v any) []any {
	out := make([]any, 0, len(seq)+1)
	out = append(out, v)

	return append(out, seq...)
}
