package cli

import (
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
)

func TestIsExit(t *testing.T) {
	for _, line := range []string{"exit", "QUIT", "q"} {
		assert.True(t, isExit(line), line)
	}
	for _, line := range []string{"cd", "exit now", "quiet"} {
		assert.False(t, isExit(line), line)
	}
}

func TestFilterInput(t *testing.T) {
	_, ok := filterInput(readline.CharCtrlZ)
	assert.False(t, ok)

	r, ok := filterInput('a')
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
}
