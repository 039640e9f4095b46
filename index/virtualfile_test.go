package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualURI(t *testing.T) {
	uri := VirtualURI("file:///work/src/user.cr", "getter", 3, 2)
	assert.Equal(t, "macro-scheme:/work/src/user.cr/getter/3_2", uri)
	assert.True(t, IsVirtualURI(uri))
	assert.False(t, IsVirtualURI("file:///work/src/user.cr"))

	origin, name, line, col, ok := ParseVirtualURI(uri)
	require.True(t, ok)
	assert.Equal(t, "/work/src/user.cr", origin)
	assert.Equal(t, "getter", name)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}

func TestParseVirtualURI_Malformed(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "wrong scheme", uri: "file:///a/b"},
		{name: "missing position", uri: "macro-scheme:/a/getter"},
		{name: "bad position", uri: "macro-scheme:/a/getter/x_y"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, _, ok := ParseVirtualURI(tc.uri)
			assert.False(t, ok)
		})
	}
}

func TestVirtualFileCache(t *testing.T) {
	cache := NewVirtualFileCache()
	uri := "macro-scheme:/a/getter/1_0"

	assert.False(t, cache.Unchanged(uri, []byte("def name; end")))
	assert.True(t, cache.Unchanged(uri, []byte("def name; end")))
	assert.False(t, cache.Unchanged(uri, []byte("def other; end")))

	cache.Forget(uri)
	assert.False(t, cache.Unchanged(uri, []byte("def other; end")))
}

func TestContentHash_Stable(t *testing.T) {
	a := ContentHash([]byte("def name; end"))
	b := ContentHash([]byte("def name; end"))
	c := ContentHash([]byte("def other; end"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
