package deep

import "fmt"

// Delete removes the cell named by the last element of p from the
// container at p[:len(p)-1] and returns the new root. Removing an
// absent key is a no-op that still returns a fresh root. The parent
// path must resolve to a container; when it does not, Delete fails
// with ErrInvalidPath. The input is never mutated.
func Delete(c Container, p Path) (Container, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parentPath, last := p[:len(p)-1], p[len(p)-1]

	parent := any(c)
	if len(parentPath) > 0 {
		v, ok, err := Get(c, parentPath)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, fmt.Errorf("%w: parent path %v is absent", ErrInvalidPath, parentPath)
		}

		parent = v
	}

	node, ok := parent.(Container)
	if !ok {
		return nil, fmt.Errorf("%w: parent path %v is not a container", ErrInvalidPath, parentPath)
	}

	trimmed := make(Container, len(node))
	for k, v := range node {
		if k != last {
			trimmed[k] = v
		}
	}

	if len(parentPath) == 0 {
		return trimmed, nil
	}

	// The parent is known to be a container, so an overwrite at its
	// path swaps it for the trimmed copy without touching siblings.
	return Put(c, parentPath, trimmed, ModeOverwrite)
}
