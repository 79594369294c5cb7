package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.txt", "c.txt"},
		{"c.txt", "c.txt"},
		{"C:\\dir\\c.txt", "c.txt"},
		{"/a/b/", ""},
		{"/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.path), "Filename(%q)", tt.path)
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		path   string
		n      int
		conv   Convention
		want   string
		wantOK bool
	}{
		{"/a/b/c", AutoLen, Unix, "/a/b", true},
		{"/a/b/c/", AutoLen, Unix, "/a/b", true},
		{"/a", AutoLen, Unix, "/", true},
		{"/", AutoLen, Unix, "/", true},
		{"\\", AutoLen, Unix, "/", true},
		{"\\", AutoLen, Windows, "\\", true},
		{"a/b", AutoLen, Unix, "a", true},
		{"C:\\dir\\file", AutoLen, Windows, "C:\\dir", true},
		{"/a/b/c", 4, Unix, "/a", true},
		{"c", AutoLen, Unix, "", false},
		{"c/", AutoLen, Unix, "", false},
		{"", AutoLen, Windows, "", false},

		// no mixed separators in the result
		{"/a\\b/c", AutoLen, Unix, "/a/b", true},
		{"/a\\b/c", AutoLen, Windows, "\\a\\b", true},
		{"C:/dir\\sub/file", AutoLen, Windows, "C:\\dir\\sub", true},
	}
	for _, tt := range tests {
		p, ok, err := NewCombiner(tt.conv, nil).Parent(tt.path, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.wantOK, ok, "Parent(%q) ok", tt.path)
		assert.Equal(t, tt.want, p.String(), "Parent(%q, %s)", tt.path, tt.conv.Name())
	}
}

func TestParentUsesNativeConvention(t *testing.T) {
	p, ok, err := Parent("/a\\b/c", AutoLen, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, NormalizeString("/a/b", Native), p.String())
}

func TestParentDistinguishesFailureFromNoParent(t *testing.T) {
	alloc := NewBudgetAllocator(2)

	_, ok, err := Parent("c", AutoLen, alloc)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Parent("/a/b", AutoLen, alloc)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.False(t, ok)

	_, _, err = Parent("/a\x00", AutoLen, alloc)
	assert.ErrorIs(t, err, ErrMalformedPath)

	_, _, err = Parent("/a", 3, alloc)
	assert.ErrorIs(t, err, ErrMalformedPath)
}

func TestBaseDir(t *testing.T) {
	p, ok, err := BaseDir("/x/y", AutoLen)
	require.NoError(t, err)
	require.True(t, ok)
	want := NormalizeString("/x", Native)
	assert.Equal(t, want, p.String())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []byte(want), p.Bytes())
	p.Release()
	assert.Equal(t, 0, p.Len())
}
