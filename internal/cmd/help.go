package cmd

import (
	"context"
	"fmt"
)

var commandHelp = map[string]string{
	"combine":   "combine [-u] [-n len] base frag  Join base and fragment (local convention, -u for unix)",
	"ucombine":  "ucombine base frag          Join as a unix-style remote path",
	"resolve":   "resolve [-l] path           Resolve path against the remote (or local) cwd",
	"fix":       "fix path...                 Turn backslashes into forward slashes",
	"normalize": "normalize [-c conv] path... Rewrite separators to one convention",
	"isabs":     "isabs [-c conv] path        Report whether path is absolute",
	"filename":  "filename path...            Print the last path component",
	"parent":    "parent [-n len] [-c conv] path  Print the parent directory",
	"ancestors": "ancestors path              Print every parent up to the root",
	"pwd":       "pwd                         Print remote working directory",
	"cd":        "cd [path|-|@name]           Change remote directory",
	"lpwd":      "lpwd                        Print local working directory",
	"lcd":       "lcd [path|-|@name]          Change local directory",
	"read":      "read path...                Print a local file (UTF-8 BOM blanked)",
	"bookmark":  "bookmark add|rm|ls|tree|go  Manage named paths",
	"help":      "help [command]              Show this help",
	"clear":     "clear [-x]                  Clear the terminal (-x keeps scrollback)",
	"exit":      "exit / quit / q             Exit the REPL",
}

func (r *Router) handleHelp(ctx context.Context, args []string) error {
	w := r.out()
	if len(args) > 0 {
		cmd := args[0]
		if help, ok := commandHelp[cmd]; ok {
			fmt.Fprintln(w, help)
		} else {
			fmt.Fprintf(w, "No help available for '%s'\n", cmd)
		}
		return nil
	}

	fmt.Fprintln(w, "pcspath — path toolkit for the storage client")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Path commands:")
	for _, cmd := range []string{"combine", "ucombine", "resolve", "fix", "normalize", "isabs", "filename", "parent", "ancestors"} {
		fmt.Fprintf(w, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Navigation:")
	for _, cmd := range []string{"pwd", "cd", "lpwd", "lcd", "read", "bookmark"} {
		fmt.Fprintf(w, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Other:")
	fmt.Fprintf(w, "  %s\n", commandHelp["help"])
	fmt.Fprintf(w, "  %s\n", commandHelp["clear"])
	fmt.Fprintf(w, "  %s\n", commandHelp["exit"])
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Any command's output can be sent to a local file with > or >>.")
	return nil
}
