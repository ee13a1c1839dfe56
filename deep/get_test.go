package deep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestmap/deep"
)

func TestGet(t *testing.T) {
	t.Parallel()

	c := deep.Container{
		"a": deep.Container{
			"b":   deep.Container{"c": "1"},
			"seq": []any{"x", "y"},
			"nil": nil,
		},
		1: deep.Container{2: "int-keyed"},
	}

	tests := []struct {
		name   string
		path   deep.Path
		want   any
		wantOK bool
	}{
		{"top level", deep.Path{"a"}, c["a"], true},
		{"leaf", deep.Path{"a", "b", "c"}, "1", true},
		{"sequence value", deep.Path{"a", "seq"}, []any{"x", "y"}, true},
		{"stored nil is present", deep.Path{"a", "nil"}, nil, true},
		{"int keys", deep.Path{1, 2}, "int-keyed", true},
		{"missing top key", deep.Path{"z"}, nil, false},
		{"missing nested key", deep.Path{"a", "z"}, nil, false},
		{"blocked by scalar", deep.Path{"a", "b", "c", "d"}, nil, false},
		{"blocked by sequence", deep.Path{"a", "seq", "x"}, nil, false},
		{"key type mismatch", deep.Path{"1", 2}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := deep.Get(c, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEmptyPath(t *testing.T) {
	t.Parallel()

	_, _, err := deep.Get(deep.Container{"a": 1}, deep.Path{})
	assert.ErrorIs(t, err, deep.ErrInvalidPath)
}

func TestGetNilContainer(t *testing.T) {
	t.Parallel()

	got, ok, err := deep.Get(nil, deep.Path{"a"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}
