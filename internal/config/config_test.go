package config

import (
	"testing"

	"github.com/rowantrollope/pcs-path-cli/internal/pathutil"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("PCSPATH_NAMESPACE", "team")
	t.Setenv("PCSPATH_CONVENTION", "windows")
	t.Setenv("PCSPATH_HISTORY", "/tmp/hist")
	t.Setenv("PCSPATH_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	assert.Equal(t, "team", cfg.Namespace)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/", cfg.RemoteDir)

	conv, err := cfg.Convention()
	require.NoError(t, err)
	assert.Equal(t, pathutil.Windows, conv)
}

func TestRegisterFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{"-c", "unix", "--remote-dir", "/apps", "--json", "--namespace", "x", "pwd"})
	require.NoError(t, err)
	assert.Equal(t, "unix", cfg.ConventionName)
	assert.Equal(t, "/apps", cfg.RemoteDir)
	assert.True(t, cfg.JSON)
	assert.Equal(t, "x", cfg.Namespace)
	assert.Equal(t, []string{"pwd"}, fs.Args())
}

func TestRedisOptions(t *testing.T) {
	cfg := &Config{}
	opts, err := cfg.RedisOptions()
	require.NoError(t, err)
	assert.Nil(t, opts)

	cfg.RedisURL = "redis://:secret@example.com:6380/2"
	opts, err = cfg.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "example.com:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	cfg.RedisURL = "http://nope"
	_, err = cfg.RedisOptions()
	assert.Error(t, err)
}

func TestShouldColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.True(t, (&Config{}).ShouldColor())
	assert.False(t, (&Config{NoColor: true}).ShouldColor())

	t.Setenv("NO_COLOR", "1")
	assert.False(t, (&Config{}).ShouldColor())
	assert.True(t, (&Config{Color: true}).ShouldColor())
}
