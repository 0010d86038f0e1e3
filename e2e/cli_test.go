//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err)

	output := string(out)
	assert.Contains(t, output, "Usage")
	assert.Contains(t, output, "--config")
	assert.Contains(t, output, "--db")
	assert.Contains(t, output, "--no-mouse")
}

func TestRejectsArguments(t *testing.T) {
	t.Parallel()

	err := exec.Command(binPath, "extra").Run()
	require.Error(t, err)
}

func TestInvalidConfigFails(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[slider.card]\nnavigation = \"sometimes\"\n"), 0644))

	out, err := exec.Command(binPath, "--config", path, "--db", filepath.Join(dir, "db")).CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "slider.card")
}
