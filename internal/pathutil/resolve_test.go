package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnix(t *testing.T) {
	tests := []struct {
		base string
		p    string
		want string
	}{
		{"/a", "b/c", "/a/b/c"},
		{"/a/b", "../c", "/a/c"},
		{"/a/b", "./c/.", "/a/b/c"},
		{"/a", "/x/../y", "/y"},
		{"/a", "~/docs", "~/docs"},
		{"/a", "~", "~"},
		{"/a", "", "/a"},
		{"/a", "..", "/"},
		{"/", "..", "/"},
		{"/a", "../../x", "/x"},
		{"/", "../x", "/x"},
		{"/a/b", "../../../x/y", "/x/y"},
		{"~/a", "../../x", "~/x"},
		{"/a", "/../x", "/x"},
		{"a", "../../x", "x"},
		{"/a", "b\\c", "/a/b/c"},
		{"/a", "\\x", "/x"},
	}
	c := NewUnixCombiner(nil)
	for _, tt := range tests {
		p, err := c.Resolve(tt.base, tt.p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.String(), "Resolve(%q, %q)", tt.base, tt.p)
	}
}

func TestResolveWindows(t *testing.T) {
	c := NewCombiner(Windows, nil)

	p, err := c.Resolve("C:\\Users", "me\\..\\you")
	require.NoError(t, err)
	assert.Equal(t, "C:\\Users\\you", p.String())

	p, err = c.Resolve("C:\\Users", "D:\\data\\x")
	require.NoError(t, err)
	assert.Equal(t, "D:\\data\\x", p.String())

	p, err = c.Resolve("C:\\a", "..\\..\\x")
	require.NoError(t, err)
	assert.Equal(t, "C:\\x", p.String())

	p, err = c.Resolve("C:\\a", "..")
	require.NoError(t, err)
	assert.Equal(t, "C:\\", p.String())
}

func TestResolveAllocationFailure(t *testing.T) {
	c := NewCombiner(Unix, NewBudgetAllocator(3))
	_, err := c.Resolve("/a", "b/c")
	assert.ErrorIs(t, err, ErrAllocation)
}
