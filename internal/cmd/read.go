package cmd

import (
	"context"
	"fmt"

	"github.com/rowantrollope/pcs-path-cli/internal/fileutil"
)

func (r *Router) handleRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("read: missing file operand")
	}

	for _, arg := range args {
		path, err := r.ResolveLocalPath(arg)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		content, err := fileutil.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		r.Log.Debug("read", "path", path, "size", len(content))
		r.Formatter.PrintFile(path, content)
	}
	return nil
}
