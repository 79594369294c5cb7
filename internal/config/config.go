package config

import (
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/rowantrollope/pcs-path-cli/internal/pathutil"
	flag "github.com/spf13/pflag"
)

// Config holds all runtime configuration.
type Config struct {
	// Path convention used for local paths: native, windows, windows-inclusive or unix.
	ConventionName string
	LocalDir       string
	RemoteDir      string

	// Bookmarks are kept in memory unless a Redis URL is given.
	RedisURL  string
	Namespace string

	JSON    bool
	NoColor bool
	Color   bool

	HistoryFile string
	LogLevel    string
	LogFormat   string

	// Remaining args after flag parsing (single-command mode)
	Args []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	histFile := filepath.Join(home, ".pcspath_history")
	if env := os.Getenv("PCSPATH_HISTORY"); env != "" {
		histFile = env
	}

	localDir, _ := os.Getwd()

	namespace := "default"
	if env := os.Getenv("PCSPATH_NAMESPACE"); env != "" {
		namespace = env
	}

	logLevel := "warn"
	if env := os.Getenv("PCSPATH_LOG_LEVEL"); env != "" {
		logLevel = env
	}
	logFormat := "text"
	if env := os.Getenv("PCSPATH_LOG_FORMAT"); env != "" {
		logFormat = env
	}

	return &Config{
		ConventionName: os.Getenv("PCSPATH_CONVENTION"),
		LocalDir:       localDir,
		RemoteDir:      "/",
		RedisURL:       os.Getenv("PCSPATH_REDIS_URL"),
		Namespace:      namespace,
		HistoryFile:    histFile,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}
}

// RegisterFlags registers CLI flags on the given flag set.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVarP(&c.ConventionName, "convention", "c", c.ConventionName, "Local path convention (native, windows, windows-inclusive, unix)")
	fs.StringVarP(&c.LocalDir, "local-dir", "l", c.LocalDir, "Initial local working directory")
	fs.StringVarP(&c.RemoteDir, "remote-dir", "r", c.RemoteDir, "Initial remote working directory")

	fs.StringVar(&c.RedisURL, "redis-url", c.RedisURL, "Redis URL for shared bookmarks (redis://...)")
	fs.StringVar(&c.Namespace, "namespace", c.Namespace, "Bookmark namespace")

	fs.BoolVar(&c.JSON, "json", false, "JSON output mode")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&c.Color, "color", false, "Force colors")

	fs.StringVar(&c.HistoryFile, "history", c.HistoryFile, "REPL history file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text, json)")
}

// Convention resolves ConventionName.
func (c *Config) Convention() (pathutil.Convention, error) {
	return pathutil.ParseConvention(c.ConventionName)
}

// RedisOptions builds go-redis options from RedisURL.
// It returns nil when bookmarks should stay in memory.
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.RedisURL == "" {
		return nil, nil
	}
	return redis.ParseURL(c.RedisURL)
}

// ShouldColor returns true if color output should be enabled.
func (c *Config) ShouldColor() bool {
	if c.NoColor {
		return false
	}
	if c.Color {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}
