package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(jsonMode bool) (*Formatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	f := NewFormatter(jsonMode, false)
	f.Writer = &out
	f.ErrWriter = &errOut
	return f, &out, &errOut
}

func TestPrintPath(t *testing.T) {
	f, out, _ := newTestFormatter(false)
	f.PrintPath("combine", nil, "/a/b")
	assert.Equal(t, "/a/b\n", out.String())

	f, out, _ = newTestFormatter(true)
	f.PrintPath("combine", map[string]interface{}{"base": "/a"}, "/a/b")
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "combine", got["op"])
	assert.Equal(t, "/a", got["base"])
	assert.Equal(t, "/a/b", got["result"])
}

func TestPrintNoParent(t *testing.T) {
	f, out, _ := newTestFormatter(true)
	f.PrintNoParent("c")
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Nil(t, got["result"])
	assert.Contains(t, got, "result")
}

func TestPrintFile(t *testing.T) {
	f, out, errOut := newTestFormatter(false)
	f.PrintFile("x.txt", []byte("abc"))
	assert.Equal(t, "abc\n", out.String())
	assert.Equal(t, "x.txt: 3 B\n", errOut.String())
}

func TestPrintBookmarkTree(t *testing.T) {
	f, out, _ := newTestFormatter(false)
	f.PrintBookmarkTree([]*bookmark.Bookmark{
		{Name: "b", Path: "/r/b", Side: bookmark.SideRemote},
		{Name: "a", Path: "/l/a", Side: bookmark.SideLocal},
		{Name: "c", Path: "/r/c", Side: bookmark.SideRemote},
	})
	want := "bookmarks\n" +
		"├── local\n" +
		"│   └── a -> /l/a\n" +
		"└── remote\n" +
		"    ├── b -> /r/b\n" +
		"    └── c -> /r/c\n" +
		"\n3 bookmarks\n"
	assert.Equal(t, want, out.String())
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "-", FormatAge(0))
	assert.Contains(t, FormatAge(time.Now().Add(-3*time.Hour).Unix()), "hours ago")
}
