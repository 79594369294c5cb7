package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rowantrollope/pcs-path-cli/internal/cmd"
)

const maxPromptPathLen = 30

// BuildPrompt renders both working directories:
//
//	pcspath:namespace:/remote/cwd [~/local/cwd]>
//
// The local side is left out when it is unknown. home, when set, is shown as "~".
func BuildPrompt(namespace string, st *cmd.State, home string, colored bool) string {
	remote := fmt.Sprintf("pcspath:%s:%s", namespace, truncatePath(st.Cwd, maxPromptPathLen))
	local := ""
	if st.LocalCwd != "" {
		local = "[" + truncatePath(abbreviateHome(st.LocalCwd, home), maxPromptPathLen) + "]"
	}

	if colored {
		green := color.New(color.FgGreen)
		green.EnableColor()
		faint := color.New(color.Faint)
		faint.EnableColor()
		remote = green.Sprint(remote)
		if local != "" {
			local = faint.Sprint(local)
		}
	}
	if local == "" {
		return remote + "> "
	}
	return remote + " " + local + "> "
}

// abbreviateHome replaces a leading home directory with "~".
func abbreviateHome(p, home string) string {
	if home == "" || !strings.HasPrefix(p, home) {
		return p
	}
	rest := p[len(home):]
	if rest != "" && rest[0] != '/' && rest[0] != '\\' {
		return p
	}
	return "~" + rest
}

// truncatePath shortens a path if it exceeds maxLen, keeping the separator
// style of the path.
// e.g., /very/long/nested/path → /.../nested/path
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	sep := "/"
	if strings.Count(path, `\`) > strings.Count(path, "/") {
		sep = `\`
	}
	parts := strings.Split(path, sep)
	if len(parts) <= 2 {
		return path
	}

	// Try to keep the last 2 components
	head := sep + "..." + sep
	suffix := parts[len(parts)-2] + sep + parts[len(parts)-1]
	if len(head)+len(suffix) <= maxLen {
		return head + suffix
	}

	// Just keep the last component
	return head + parts[len(parts)-1]
}
