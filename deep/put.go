package deep

import "fmt"

// Put writes v at path p in c and returns the new root. The input is
// never mutated: every container from the root down to the written cell
// is rebuilt, and branches off the path are shared with the input.
//
// In ModeOverwrite the final cell takes v, displacing whatever was
// there; any non-container value in an intermediate position is
// discarded and replaced by a fresh branch. In ModeAccumulate the final
// cell grows a sequence with v prepended (see ModeEnum).
//
// A nil c is treated as an empty container.
func Put(c Container, p Path, v any, mode ModeEnum) (Container, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}

	return put(c, p, v, mode), nil
}

// put rebuilds one container layer and recurses down the path. The
// copy-then-descend order is what publishes a fully rebuilt spine: each
// level's copy receives the rebuilt child, so no partial state is ever
// visible through the input.
func put(c Container, p Path, v any, mode ModeEnum) Container {
	key := p[0]
	cur, present := c[key]
	final := len(p) == 1

	out := make(Container, len(c)+1)
	for k, val := range c {
		out[k] = val
	}

	repl := next(mode, cur, present, v, final)
	if !final {
		// next guarantees a container here: either the existing child
		// to descend into or a fresh branch.
		repl = put(repl.(Container), p[1:], v, mode)
	}

	out[key] = repl

	return out
}
