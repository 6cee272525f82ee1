package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionFind(t *testing.T) {
	u := NewUnionFind(6)
	require.Equal(t, 6, u.Count())

	require.True(t, u.Union(0, 1))
	require.True(t, u.Union(2, 3))
	require.True(t, u.Union(1, 3))
	assert.False(t, u.Union(0, 2), "Union of joined elements")

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 3, true},
		{1, 2, true},
		{0, 4, false},
		{4, 5, false},
		{5, 5, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, u.Connected(tt.x, tt.y), "Connected(%d, %d)", tt.x, tt.y)
	}
	assert.Equal(t, 4, u.Size(2))
	assert.Equal(t, 1, u.Size(4))
	assert.Equal(t, 3, u.Count())
}

func TestUnionFindPathCompression(t *testing.T) {
	u := NewUnionFind(5)
	for i := 1; i < 5; i++ {
		u.Union(i-1, i)
	}
	root := u.Find(4)
	for i := range 5 {
		u.Find(i)
		assert.Equal(t, root, u.parent[i], "parent[%d] after Find", i)
	}
}
