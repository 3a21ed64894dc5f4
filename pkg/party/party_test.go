package party

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIDSlice_SortsAndDedupes(t *testing.T) {
	ids := NewIDSlice([]ID{"c", "a", "b", "a", "c"})
	require.Equal(t, IDSlice{"a", "b", "c"}, ids)
}

func TestNewIDSlice_Empty(t *testing.T) {
	ids := NewIDSlice(nil)
	require.Equal(t, 0, ids.Len())
}

func TestContains(t *testing.T) {
	ids := NewIDSlice([]ID{"a", "b", "c"})
	require.True(t, ids.Contains("b"))
	require.False(t, ids.Contains("z"))
}

func TestOther_ExcludesSelf(t *testing.T) {
	ids := NewIDSlice([]ID{"a", "b", "c"})
	others := ids.Other("b")
	require.Equal(t, IDSlice{"a", "c"}, others)
	require.False(t, others.Contains("b"))
}

func TestOther_SelfNotPresent(t *testing.T) {
	ids := NewIDSlice([]ID{"a", "b", "c"})
	others := ids.Other("z")
	require.Equal(t, ids, others)
}
