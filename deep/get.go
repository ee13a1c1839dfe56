package deep

import "fmt"

// Get resolves path p against c and returns the value found there.
// The second result reports presence: a missing key anywhere along the
// path, or a non-container in an intermediate position, yields
// (nil, false, nil) — absence is an ordinary outcome, not an error.
// Only an empty path is an error (ErrInvalidPath).
func Get(c Container, p Path) (any, bool, error) {
	if len(p) == 0 {
		return nil, false, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	cur := any(c)

	for _, key := range p {
		node, ok := cur.(Container)
		if !ok {
			return nil, false, nil
		}

		cur, ok = node[key]
		if !ok {
			return nil, false, nil
		}
	}

	return cur, true, nil
}
