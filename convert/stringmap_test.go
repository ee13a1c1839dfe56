package convert_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestmap/convert"
	"nestmap/deep"
)

func TestFromStringMap(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"a": map[string]any{"b": 1},
		"seq": []any{
			map[string]any{"c": 2},
			"scalar",
		},
	}

	got := convert.FromStringMap(in)

	want := deep.Container{
		"a": deep.Container{"b": 1},
		"seq": []any{
			deep.Container{"c": 2},
			"scalar",
		},
	}
	assert.Empty(t, cmp.Diff(want, got))

	// Deep conversion means the result is writable at depth.
	out, err := deep.Put(got, deep.Path{"a", "b"}, 9, deep.ModeOverwrite)
	require.NoError(t, err)

	v, ok, err := deep.Get(out, deep.Path{"a", "b"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestToStringMap(t *testing.T) {
	t.Parallel()

	in := deep.Container{
		1:        deep.Container{true: []any{"x"}},
		"s":      "scalar",
		int64(9): "wide",
	}

	got, err := convert.ToStringMap(in)
	require.NoError(t, err)

	want := map[string]any{
		"1": map[string]any{"true": []any{"x"}},
		"s": "scalar",
		"9": "wide",
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestToStringMapCollision(t *testing.T) {
	t.Parallel()

	_, err := convert.ToStringMap(deep.Container{1: "a", "1": "b"})
	assert.ErrorIs(t, err, convert.ErrKeyCollision)
}

func TestRoundTripThroughGroupBy(t *testing.T) {
	t.Parallel()

	doc := []any{
		map[string]any{"name": "stian", "group": 1},
		map[string]any{"name": "per", "group": 1},
	}

	var records []deep.Container
	for _, d := range doc {
		records = append(records, convert.FromStringMap(d.(map[string]any)))
	}

	tree, err := deep.GroupBy(records, deep.Path{"group"})
	require.NoError(t, err)

	out, err := convert.ToStringMap(tree)
	require.NoError(t, err)

	seq, ok := out["1"].([]any)
	require.True(t, ok)
	assert.Len(t, seq, 2)
}
