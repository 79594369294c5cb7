package cmd

import (
	"context"
	"fmt"

	"github.com/rowantrollope/pcs-path-cli/internal/pathutil"
	flag "github.com/spf13/pflag"
)

func (r *Router) handleCombine(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("combine", flag.ContinueOnError)
	unix := fs.BoolP("unix", "u", false, "Combine as a unix-style remote path")
	baseLen := fs.IntP("len", "n", pathutil.AutoLen, "Use only the first n bytes of base")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("combine: usage: combine [-u] [-n len] base fragment")
	}

	c := r.local
	if *unix {
		c = r.remote
	}
	return r.printCombined("combine", c, fs.Arg(0), *baseLen, fs.Arg(1))
}

func (r *Router) handleUnixCombine(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("ucombine: usage: ucombine base fragment")
	}
	return r.printCombined("ucombine", r.remote, args[0], pathutil.AutoLen, args[1])
}

func (r *Router) printCombined(op string, c *pathutil.Combiner, base string, baseLen int, fragment string) error {
	p, err := c.Combine(base, baseLen, fragment)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer p.Release()

	r.Log.Debug("combined", "convention", c.Convention().Name(), "base", base, "fragment", fragment, "result", p.String())
	r.Formatter.PrintPath(op, map[string]interface{}{
		"base":       base,
		"fragment":   fragment,
		"convention": c.Convention().Name(),
	}, p.String())
	return nil
}

func (r *Router) handleResolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	local := fs.BoolP("local", "l", false, "Resolve against the local working directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("resolve: usage: resolve [-l] path")
	}

	resolve := r.ResolvePath
	if *local {
		resolve = r.ResolveLocalPath
	}
	p, err := resolve(fs.Arg(0))
	if err != nil {
		return err
	}
	r.Formatter.PrintPath("resolve", map[string]interface{}{"path": fs.Arg(0)}, p)
	return nil
}

func (r *Router) handleFix(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fix: missing path operand")
	}
	for _, arg := range args {
		fixed := string(pathutil.FixUnixPath([]byte(arg)))
		r.Formatter.PrintPath("fix", map[string]interface{}{"path": arg}, fixed)
	}
	return nil
}

func (r *Router) handleNormalize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	convName := fs.StringP("convention", "c", "", "Target convention (default: local)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("normalize: missing path operand")
	}
	conv, err := r.conventionFlag(*convName)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	for _, arg := range fs.Args() {
		r.Formatter.PrintPath("normalize", map[string]interface{}{
			"path":       arg,
			"convention": conv.Name(),
		}, pathutil.NormalizeString(arg, conv))
	}
	return nil
}

func (r *Router) handleIsAbs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("isabs", flag.ContinueOnError)
	convName := fs.StringP("convention", "c", "", "Convention to test against (default: local)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("isabs: usage: isabs [-c convention] path")
	}
	conv, err := r.conventionFlag(*convName)
	if err != nil {
		return fmt.Errorf("isabs: %w", err)
	}
	r.Formatter.PrintBool("isabs", fs.Arg(0), pathutil.IsAbsolute(fs.Arg(0), conv))
	return nil
}

func (r *Router) handleFilename(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("filename: missing path operand")
	}
	for _, arg := range args {
		r.Formatter.PrintPath("filename", map[string]interface{}{"path": arg}, pathutil.Filename(arg))
	}
	return nil
}

func (r *Router) handleParent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("parent", flag.ContinueOnError)
	n := fs.IntP("len", "n", pathutil.AutoLen, "Use only the first n bytes of path")
	convName := fs.StringP("convention", "c", "", "Convention of the result (default: local)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("parent: usage: parent [-n len] [-c convention] path")
	}
	conv, err := r.conventionFlag(*convName)
	if err != nil {
		return fmt.Errorf("parent: %w", err)
	}

	arg := fs.Arg(0)
	p, ok, err := pathutil.NewCombiner(conv, nil).Parent(arg, *n)
	if err != nil {
		return fmt.Errorf("parent: %w", err)
	}
	if !ok {
		r.Formatter.PrintNoParent(arg)
		return nil
	}
	defer p.Release()
	r.Formatter.PrintPath("parent", map[string]interface{}{"path": arg, "len": *n}, p.String())
	return nil
}

// handleAncestors walks Parent until the path has none or reaches its root.
func (r *Router) handleAncestors(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("ancestors: usage: ancestors path")
	}

	var chain []string
	cur := args[0]
	for {
		p, ok, err := r.local.Parent(cur, pathutil.AutoLen)
		if err != nil {
			return fmt.Errorf("ancestors: %w", err)
		}
		if !ok {
			break
		}
		next := p.String()
		p.Release()
		if next == cur {
			break
		}
		chain = append(chain, next)
		cur = next
	}
	r.Formatter.PrintList("ancestors", chain)
	return nil
}

func (r *Router) conventionFlag(name string) (pathutil.Convention, error) {
	if name == "" {
		return r.local.Convention(), nil
	}
	return pathutil.ParseConvention(name)
}
