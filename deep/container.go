package deep

type (
	// Key is a single path element. It must be a comparable value;
	// writing with a non-comparable key panics, same as inserting it
	// into a Go map would.
	Key = any

	// Path is a non-empty ordered key sequence. The last key names the
	// cell being read, written, or deleted; the preceding keys name the
	// chain of containers leading to it.
	Path = []Key

	// Container is the nested-structure building block. Keys of
	// different dynamic types are distinct even when they render the
	// same (the string "1" and the int 1 address different cells).
	Container = map[Key]any
)
