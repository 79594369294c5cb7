package cmd

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"
)

const (
	ansiHome        = "\033[H"
	ansiClearScreen = "\033[2J"
	ansiClearScroll = "\033[3J"
)

func (r *Router) handleClear(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	keep := fs.BoolP("keep-scrollback", "x", false, "Do not clear the scrollback buffer")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// JSON output never carries escape codes.
	if r.Formatter.JSON {
		return nil
	}

	seq := ansiHome + ansiClearScreen
	if !*keep {
		seq += ansiClearScroll
	}
	fmt.Fprint(r.out(), seq)
	return nil
}
