package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
)

func (r *Router) handlePwd(ctx context.Context, args []string) error {
	r.Formatter.PrintPath("pwd", nil, r.State.Cwd)
	return nil
}

func (r *Router) handleLpwd(ctx context.Context, args []string) error {
	r.Formatter.PrintPath("lpwd", nil, r.State.LocalCwd)
	return nil
}

// handleCd changes the remote working directory. There is no remote
// filesystem to consult, so any well-formed path is accepted.
func (r *Router) handleCd(ctx context.Context, args []string) error {
	var target string
	switch {
	case len(args) == 0:
		target = "/"
	case args[0] == "-":
		if r.State.PrevDir == "" {
			return fmt.Errorf("cd: OLDPWD not set")
		}
		target = r.State.PrevDir
	case strings.HasPrefix(args[0], "@"):
		b, err := r.lookupBookmark(ctx, args[0][1:])
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
		if b.Side == bookmark.SideLocal {
			return r.handleLcd(ctx, []string{b.Path})
		}
		target = b.Path
	default:
		var err error
		target, err = r.ResolvePath(args[0])
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}
	}

	if target == "" {
		target = "/"
	}

	r.State.PrevDir = r.State.Cwd
	r.State.Cwd = target
	r.Log.Debug("cd", "cwd", target)
	return nil
}

// handleLcd changes the local working directory after checking it exists.
func (r *Router) handleLcd(ctx context.Context, args []string) error {
	var target string
	switch {
	case len(args) == 0:
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("lcd: %w", err)
		}
		target = home
	case args[0] == "-":
		if r.State.LocalPrev == "" {
			return fmt.Errorf("lcd: OLDPWD not set")
		}
		target = r.State.LocalPrev
	case strings.HasPrefix(args[0], "@"):
		b, err := r.lookupBookmark(ctx, args[0][1:])
		if err != nil {
			return fmt.Errorf("lcd: %w", err)
		}
		target = b.Path
	default:
		var err error
		target, err = r.ResolveLocalPath(args[0])
		if err != nil {
			return fmt.Errorf("lcd: %w", err)
		}
	}

	if target == "" {
		return fmt.Errorf("lcd: %s: No such file or directory", args[0])
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("lcd: %s: No such file or directory", target)
		}
		return fmt.Errorf("lcd: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("lcd: %s: Not a directory", target)
	}

	r.State.LocalPrev = r.State.LocalCwd
	r.State.LocalCwd = target
	r.Log.Debug("lcd", "cwd", target)
	return nil
}
