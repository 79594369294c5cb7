package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
	"github.com/rowantrollope/pcs-path-cli/internal/cli"
	"github.com/rowantrollope/pcs-path-cli/internal/cmd"
	"github.com/rowantrollope/pcs-path-cli/internal/config"
	"github.com/rowantrollope/pcs-path-cli/internal/output"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()

	// Custom flag set to avoid os.Exit on parse error
	flags := flag.NewFlagSet("pcspath", flag.ContinueOnError)
	flags.SetInterspersed(false) // Stop parsing at first non-flag arg (the command)
	cfg.RegisterFlags(flags)
	showVersion := flags.Bool("version", false, "Show version and exit")

	// Parse flags; remaining args are the single-command
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}
	cfg.Args = flags.Args()

	if *showVersion {
		fmt.Printf("pcspath %s\n", version)
		return 0
	}

	// Set up color
	if !cfg.ShouldColor() {
		color.NoColor = true
	}

	formatter := output.NewFormatter(cfg.JSON, cfg.ShouldColor())

	log, err := output.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}

	ctx := context.Background()

	// Bookmarks live in Redis when configured, in memory otherwise
	var store bookmark.Store = bookmark.NewMemoryStore()
	opts, err := cfg.RedisOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid redis url: %s\n", err)
		return 2
	}
	if opts != nil {
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot connect to Redis at %s: %s\n", opts.Addr, err)
			return 1
		}
		defer rdb.Close()
		store = bookmark.NewRedisStore(rdb, cfg.Namespace)
		log.Debug("bookmark store", "backend", "redis", "addr", opts.Addr, "namespace", cfg.Namespace)
	}

	router, err := cmd.NewRouter(store, cfg, formatter, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}

	// Single-command mode
	if len(cfg.Args) > 0 {
		if err := router.ExecuteArgs(ctx, cfg.Args); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		return 0
	}

	// Interactive REPL mode
	repl := cli.NewREPL(router, cfg, formatter)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
