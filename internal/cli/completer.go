package cli

import (
	"context"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/pcs-path-cli/internal/cmd"
)

var bookmarkSubcommands = []string{"add", "go", "ls", "rm", "tree"}

// NewCompleter creates a tab completer for the REPL.
func NewCompleter(router *cmd.Router) *Completer {
	return &Completer{router: router}
}

// Completer completes command names, bookmark subcommands and @bookmark references.
type Completer struct {
	router *cmd.Router
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)

	// Complete command name
	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return complete(prefix, c.router.CommandNames()), len(prefix)
	}

	partial := ""
	if !strings.HasSuffix(lineStr, " ") {
		partial = parts[len(parts)-1]
	}

	// Skip flag-like args
	if strings.HasPrefix(partial, "-") {
		return nil, 0
	}

	argIndex := len(parts) - 1
	if partial == "" {
		argIndex = len(parts)
	}

	if strings.ToLower(parts[0]) == "bookmark" {
		switch {
		case argIndex == 1:
			return complete(partial, bookmarkSubcommands), len(partial)
		case argIndex == 2 && (parts[1] == "go" || parts[1] == "rm"):
			return complete(partial, c.router.BookmarkNames(context.Background())), len(partial)
		}
		return nil, 0
	}

	if strings.HasPrefix(partial, "@") {
		prefix := partial[1:]
		return complete(prefix, c.router.BookmarkNames(context.Background())), len(prefix)
	}
	return nil, 0
}

// complete returns the suffixes of candidates that start with prefix.
func complete(prefix string, candidates []string) [][]rune {
	var matches []string
	for _, name := range candidates {
		if strings.HasPrefix(name, strings.ToLower(prefix)) || strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	result := make([][]rune, len(matches))
	for i, m := range matches {
		result[i] = []rune(m[len(prefix):] + " ")
	}
	return result
}

// Ensure Completer satisfies the readline.AutoCompleter interface.
var _ readline.AutoCompleter = (*Completer)(nil)
