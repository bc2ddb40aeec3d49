package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreenShotDebuggerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")

	dbg := NewScreenShotDebugger(dir)

	assert.Equal(t, dir, dbg.outputDir)
	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewScreenShotDebuggerDefaultsDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	// An empty dir must still yield a usable default path.
	fallback := NewScreenShotDebugger("")
	assert.Equal(t, filepath.Join("logs", "screenshots"), fallback.outputDir)
}
