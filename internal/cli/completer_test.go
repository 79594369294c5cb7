package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
	"github.com/rowantrollope/pcs-path-cli/internal/cmd"
	"github.com/rowantrollope/pcs-path-cli/internal/config"
	"github.com/rowantrollope/pcs-path-cli/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompleter(t *testing.T) *Completer {
	t.Helper()
	f := output.NewFormatter(false, false)
	f.Writer = &bytes.Buffer{}

	store := bookmark.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, bookmark.New("docs", "/docs", bookmark.SideRemote)))
	require.NoError(t, store.Set(ctx, bookmark.New("data", "/data", bookmark.SideRemote)))

	r, err := cmd.NewRouter(store, &config.Config{ConventionName: "unix", RemoteDir: "/"}, f, nil)
	require.NoError(t, err)
	return NewCompleter(r)
}

func toStrings(rs [][]rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

func TestCompleteCommand(t *testing.T) {
	c := newTestCompleter(t)
	line := []rune("co")
	got, n := c.Do(line, len(line))
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"mbine "}, toStrings(got))
}

func TestCompleteBookmarkReference(t *testing.T) {
	c := newTestCompleter(t)
	line := []rune("cd @d")
	got, n := c.Do(line, len(line))
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"ata ", "ocs "}, toStrings(got))
}

func TestCompleteBookmarkSubcommand(t *testing.T) {
	c := newTestCompleter(t)

	line := []rune("bookmark t")
	got, _ := c.Do(line, len(line))
	assert.Equal(t, []string{"ree "}, toStrings(got))

	line = []rune("bookmark go ")
	got, n := c.Do(line, len(line))
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{"data ", "docs "}, toStrings(got))
}

func TestCompleteSkipsFlags(t *testing.T) {
	c := newTestCompleter(t)
	line := []rune("combine -")
	got, n := c.Do(line, len(line))
	assert.Nil(t, got)
	assert.Equal(t, 0, n)
}
