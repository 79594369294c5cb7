package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
	"github.com/rowantrollope/pcs-path-cli/internal/config"
	"github.com/rowantrollope/pcs-path-cli/internal/output"
	"github.com/rowantrollope/pcs-path-cli/internal/pathutil"
)

// State holds the current session state.
type State struct {
	Cwd       string // remote, unix-style
	PrevDir   string
	LocalCwd  string // local, native convention
	LocalPrev string
}

// Router dispatches commands to the appropriate handler.
type Router struct {
	Store     bookmark.Store
	Config    *config.Config
	Formatter *output.Formatter
	Log       *slog.Logger
	State     *State

	local    *pathutil.Combiner
	remote   *pathutil.Combiner
	handlers map[string]Handler
}

// Handler is a function that handles a command.
type Handler func(ctx context.Context, args []string) error

// NewRouter creates a command router with all registered handlers.
func NewRouter(store bookmark.Store, cfg *config.Config, formatter *output.Formatter, log *slog.Logger) (*Router, error) {
	conv, err := cfg.Convention()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = output.DiscardLogger()
	}

	r := &Router{
		Store:     store,
		Config:    cfg,
		Formatter: formatter,
		Log:       log,
		local:     pathutil.NewCombiner(conv, nil),
		remote:    pathutil.NewUnixCombiner(nil),
		handlers:  make(map[string]Handler),
	}

	remoteDir, err := r.resolve(r.remote, "/", cfg.RemoteDir)
	if err != nil {
		return nil, err
	}
	if remoteDir == "" {
		remoteDir = "/"
	}
	r.State = &State{
		Cwd:      remoteDir,
		LocalCwd: cfg.LocalDir,
	}
	r.registerHandlers()
	return r, nil
}

func (r *Router) registerHandlers() {
	r.handlers["combine"] = r.handleCombine
	r.handlers["ucombine"] = r.handleUnixCombine
	r.handlers["resolve"] = r.handleResolve
	r.handlers["fix"] = r.handleFix
	r.handlers["normalize"] = r.handleNormalize
	r.handlers["isabs"] = r.handleIsAbs
	r.handlers["filename"] = r.handleFilename
	r.handlers["parent"] = r.handleParent
	r.handlers["ancestors"] = r.handleAncestors
	r.handlers["pwd"] = r.handlePwd
	r.handlers["cd"] = r.handleCd
	r.handlers["lpwd"] = r.handleLpwd
	r.handlers["lcd"] = r.handleLcd
	r.handlers["read"] = r.handleRead
	r.handlers["bookmark"] = r.handleBookmark
	r.handlers["help"] = r.handleHelp
	r.handlers["clear"] = r.handleClear
}

// Execute runs a parsed command line.
func (r *Router) Execute(ctx context.Context, line string) error {
	tokens, redirect, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	return r.dispatch(ctx, tokens, redirect)
}

// ExecuteArgs runs a command whose arguments are already split, as they are
// when passed on the process command line.
func (r *Router) ExecuteArgs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return r.dispatch(ctx, args, nil)
}

func (r *Router) dispatch(ctx context.Context, tokens []string, redirect *Redirect) error {
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	handler, ok := r.handlers[cmd]
	if !ok {
		return fmt.Errorf("%s: command not found", tokens[0])
	}

	r.Log.Debug("dispatch", "cmd", cmd, "args", args)

	if redirect != nil {
		return r.executeRedirected(ctx, handler, args, redirect)
	}
	return handler(ctx, args)
}

// executeRedirected sends the handler's stdout to a local file.
func (r *Router) executeRedirected(ctx context.Context, handler Handler, args []string, redirect *Redirect) error {
	target, err := r.resolve(r.local, r.State.LocalCwd, redirect.Path)
	if err != nil {
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if redirect.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		return fmt.Errorf("redirect: %w", err)
	}
	defer f.Close()

	saved := r.Formatter.Writer
	r.Formatter.Writer = f
	defer func() { r.Formatter.Writer = saved }()

	r.Log.Debug("redirect", "target", target, "append", redirect.Append)
	return handler(ctx, args)
}

// IsBuiltin returns true if the command is a registered command.
func (r *Router) IsBuiltin(cmd string) bool {
	_, ok := r.handlers[strings.ToLower(cmd)]
	return ok
}

// CommandNames returns all registered command names.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// ResolvePath resolves a remote path relative to cwd.
func (r *Router) ResolvePath(p string) (string, error) {
	if p == "" {
		return r.State.Cwd, nil
	}
	return r.resolve(r.remote, r.State.Cwd, p)
}

// ResolveLocalPath resolves a local path relative to the local cwd.
func (r *Router) ResolveLocalPath(p string) (string, error) {
	if p == "" {
		return r.State.LocalCwd, nil
	}
	return r.resolve(r.local, r.State.LocalCwd, p)
}

func (r *Router) resolve(c *pathutil.Combiner, base, p string) (string, error) {
	res, err := c.Resolve(base, p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	defer res.Release()
	return res.String(), nil
}

// out returns the writer for command output.
func (r *Router) out() io.Writer {
	return r.Formatter.Writer
}
