package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T, words string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "secretWords5.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	t.Setenv("WORDS_FILE", path)
	t.Setenv("HISTORY_DIR", filepath.Join(dir, "trackers"))
	t.Setenv("HISTORY_DB", filepath.Join(dir, "history.db"))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlayAndHistory(t *testing.T) {
	dir := setupEnv(t, "crane\n")

	out, err := run(t, "slate\ncrane\nno\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Bravo! You guessed the secret word")

	files, err := os.ReadDir(filepath.Join(dir, "trackers"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	out, err = run(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "OUTCOME")
	assert.Contains(t, out, "won")
}

func TestDaily(t *testing.T) {
	setupEnv(t, "crane\n")
	out, err := run(t, "crane\nyes\n", "daily")
	require.NoError(t, err)
	assert.Contains(t, out, "Bravo!")
	assert.NotContains(t, out, "Play another game?")
}

func TestEmptyWordSourceAbortsStartup(t *testing.T) {
	setupEnv(t, "  \n# nothing here\n")
	out, err := run(t, "crane\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no words")
	assert.NotContains(t, out, "Starting game")
}
