package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rowantrollope/pcs-path-cli/internal/cmd"
	"github.com/rowantrollope/pcs-path-cli/internal/config"
	"github.com/rowantrollope/pcs-path-cli/internal/output"
)

// REPL is the interactive read-eval-print loop.
type REPL struct {
	Router    *cmd.Router
	Config    *config.Config
	Formatter *output.Formatter

	home string
}

// NewREPL creates a new REPL instance.
func NewREPL(router *cmd.Router, cfg *config.Config, formatter *output.Formatter) *REPL {
	home, _ := os.UserHomeDir()
	return &REPL{
		Router:    router,
		Config:    cfg,
		Formatter: formatter,
		home:      home,
	}
}

func (r *REPL) prompt() string {
	return BuildPrompt(r.Config.Namespace, r.Router.State, r.home, r.Config.ShouldColor())
}

// Run reads commands until exit, EOF or a terminal error.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              r.prompt(),
		HistoryFile:         r.Config.HistoryFile,
		HistoryLimit:        10000,
		AutoComplete:        NewCompleter(r.Router),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rl.SetPrompt(r.prompt())

		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			return nil
		}

		if err := r.Router.Execute(ctx, line); err != nil {
			r.Router.Log.Debug("command failed", "line", line, "err", err)
			r.Formatter.Errorf("%s\n", err)
		}
	}
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "q":
		return true
	}
	return false
}

// filterInput drops Ctrl-Z so the shell is not suspended mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
