package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchList(n int) []Match {
	out := make([]Match, n)
	for i := range out {
		out[i] = Match{Path: "a.txt", Start: i, End: i + 1}
	}
	return out
}

func TestNavigator_EmptyList(t *testing.T) {
	nav := NewNavigator()

	_, ok := nav.Current()
	assert.False(t, ok)
	_, ok = nav.Next()
	assert.False(t, ok)
	_, ok = nav.Previous()
	assert.False(t, ok)
	assert.Equal(t, 0, nav.Len())
}

func TestNavigator_WrapsForward(t *testing.T) {
	nav := NewNavigator()
	nav.Set(matchList(3))

	cur, ok := nav.Current()
	require.True(t, ok)
	assert.Equal(t, 0, cur.Start)

	for i := 0; i < 3; i++ {
		nav.Next()
	}
	assert.Equal(t, 0, nav.Cursor())
}

func TestNavigator_WrapsBackward(t *testing.T) {
	nav := NewNavigator()
	nav.Set(matchList(4))

	m, ok := nav.Previous()
	require.True(t, ok)
	assert.Equal(t, 3, nav.Cursor())
	assert.Equal(t, 3, m.Start)
}

func TestNavigator_SetResetsCursor(t *testing.T) {
	nav := NewNavigator()
	nav.Set(matchList(5))
	nav.Next()
	nav.Next()
	require.Equal(t, 2, nav.Cursor())

	nav.Set(matchList(2))
	assert.Equal(t, 0, nav.Cursor())

	nav.Next()
	nav.Reset()
	assert.Equal(t, 0, nav.Cursor())
}
