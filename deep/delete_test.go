package deep_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestmap/deep"
)

func TestDelete(t *testing.T) {
	t.Parallel()

	in := deep.Container{"a": deep.Container{"b": deep.Container{"c": deep.Container{"d": 1, "e": 1}}}}

	out, err := deep.Delete(in, deep.Path{"a", "b", "c", "d"})
	require.NoError(t, err)

	want := deep.Container{"a": deep.Container{"b": deep.Container{"c": deep.Container{"e": 1}}}}
	assert.Empty(t, cmp.Diff(want, out))
}

func TestDeleteTopLevel(t *testing.T) {
	t.Parallel()

	out, err := deep.Delete(deep.Container{"a": 1, "b": 2}, deep.Path{"a"})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(deep.Container{"b": 2}, out))
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	t.Parallel()

	in := deep.Container{"a": deep.Container{"b": 1}}

	out, err := deep.Delete(in, deep.Path{"a", "z"})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(in, out))
}

func TestDeleteDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := deep.Container{"a": deep.Container{"b": deep.Container{"c": 1, "d": 2}}}
	saved := deep.Container{"a": deep.Container{"b": deep.Container{"c": 1, "d": 2}}}

	_, err := deep.Delete(in, deep.Path{"a", "b", "c"})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(saved, in))
}

func TestDeleteInvalidParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   deep.Container
		path deep.Path
	}{
		{"parent absent", deep.Container{"a": 1}, deep.Path{"z", "k"}},
		{"parent is scalar", deep.Container{"a": 1}, deep.Path{"a", "k"}},
		{"parent is sequence", deep.Container{"a": []any{1}}, deep.Path{"a", "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deep.Delete(tt.in, tt.path)
			assert.ErrorIs(t, err, deep.ErrInvalidPath)
		})
	}
}

func TestDeleteEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := deep.Delete(deep.Container{"a": 1}, deep.Path{})
	assert.ErrorIs(t, err, deep.ErrInvalidPath)
}
