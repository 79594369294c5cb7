package cmd

import (
	"context"
	"fmt"

	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
	flag "github.com/spf13/pflag"
)

func (r *Router) handleBookmark(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return r.bookmarkList(ctx, nil)
	}

	sub := args[0]
	rest := args[1:]
	switch sub {
	case "add", "set":
		return r.bookmarkAdd(ctx, rest)
	case "rm", "del":
		return r.bookmarkRemove(ctx, rest)
	case "ls", "list":
		return r.bookmarkList(ctx, rest)
	case "tree":
		return r.bookmarkTree(ctx)
	case "go":
		if len(rest) != 1 {
			return fmt.Errorf("bookmark go: usage: bookmark go name")
		}
		return r.handleCd(ctx, []string{"@" + rest[0]})
	default:
		return fmt.Errorf("bookmark: unknown subcommand: %s (use add, rm, ls, tree, go)", sub)
	}
}

func (r *Router) bookmarkAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookmark add", flag.ContinueOnError)
	sideName := fs.StringP("side", "s", "remote", "Side the path belongs to (local, remote)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("bookmark add: usage: bookmark add [-s side] name [path]")
	}

	side, err := bookmark.ParseSide(*sideName)
	if err != nil {
		return err
	}

	path := ""
	if fs.NArg() == 2 {
		path = fs.Arg(1)
	}
	if side == bookmark.SideLocal {
		path, err = r.ResolveLocalPath(path)
	} else {
		path, err = r.ResolvePath(path)
	}
	if err != nil {
		return fmt.Errorf("bookmark add: %w", err)
	}

	b := bookmark.New(fs.Arg(0), path, side)
	if err := r.Store.Set(ctx, b); err != nil {
		return err
	}
	r.Log.Debug("bookmark saved", "name", b.Name, "side", b.Side, "path", b.Path)
	return nil
}

func (r *Router) bookmarkRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("bookmark rm: missing name operand")
	}
	for _, name := range args {
		if err := r.Store.Delete(ctx, name); err != nil {
			return fmt.Errorf("bookmark rm: %w", err)
		}
	}
	return nil
}

func (r *Router) bookmarkList(ctx context.Context, args []string) error {
	items, err := r.Store.List(ctx)
	if err != nil {
		return err
	}
	r.Formatter.PrintBookmarks(items)
	return nil
}

func (r *Router) bookmarkTree(ctx context.Context) error {
	items, err := r.Store.List(ctx)
	if err != nil {
		return err
	}
	r.Formatter.PrintBookmarkTree(items)
	return nil
}

func (r *Router) lookupBookmark(ctx context.Context, name string) (*bookmark.Bookmark, error) {
	if err := bookmark.ValidateName(name); err != nil {
		return nil, err
	}
	return r.Store.Get(ctx, name)
}

// BookmarkNames returns stored bookmark names, or nil if the store fails.
func (r *Router) BookmarkNames(ctx context.Context) []string {
	items, err := r.Store.List(ctx)
	if err != nil {
		r.Log.Debug("bookmark list failed", "err", err)
		return nil
	}
	names := make([]string, len(items))
	for i, b := range items {
		names[i] = b.Name
	}
	return names
}
