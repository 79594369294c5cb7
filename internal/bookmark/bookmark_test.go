package bookmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGen(t *testing.T) {
	k := NewKeyGen("default")
	assert.Equal(t, "pcspath:default:bm:docs", k.Entry("docs"))
	assert.Equal(t, "pcspath:default:names", k.Names())
}

func TestMapRoundTrip(t *testing.T) {
	b := &Bookmark{Name: "docs", Path: "/apps/docs", Side: SideRemote, CTime: 1700000000}
	m := b.ToMap()

	strMap := make(map[string]string, len(m))
	for k, v := range m {
		strMap[k] = v.(string)
	}
	assert.Equal(t, b, FromMap(strMap))
	assert.Nil(t, FromMap(nil))
	assert.Nil(t, FromMap(map[string]string{}))
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want Side
	}{
		{"local", SideLocal},
		{"L", SideLocal},
		{"remote", SideRemote},
		{"r", SideRemote},
		{"", SideRemote},
	}
	for _, tt := range tests {
		got, err := ParseSide(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseSide("both")
	assert.Error(t, err)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("docs"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("my docs"))
	assert.Error(t, ValidateName("a:b"))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, New("b", "/remote/b", SideRemote)))
	require.NoError(t, s.Set(ctx, New("a", "/local/a", SideLocal)))
	assert.Error(t, s.Set(ctx, New("bad name", "/x", SideLocal)))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "/local/a", got.Path)
	assert.Equal(t, SideLocal, got.Side)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "b", list[1].Name)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "a"), ErrNotFound)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	b := New("x", "/x", SideRemote)
	require.NoError(t, s.Set(ctx, b))

	b.Path = "/changed"
	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "/x", got.Path)
}
