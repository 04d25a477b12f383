package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDataDir returns a data directory with notifications switched off
func newDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("notify = false\n"), 0644))
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.toml"), "--data-dir", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, out)
	return out
}

func createdID(t *testing.T, out, kind string) int64 {
	t.Helper()
	var id int64
	_, err := fmt.Sscanf(out, "Created "+kind+" %d:", &id)
	require.NoError(t, err, out)
	return id
}

func TestCommandsPersistBetweenRuns(t *testing.T) {
	dir := newDataDir(t)

	work := createdID(t, mustRun(t, dir, "subject", "add", "Work"), "group")
	home := createdID(t, mustRun(t, dir, "subject", "add", "  Home   chores"), "group")
	plan := createdID(t, mustRun(t, dir, "add", fmt.Sprint(work), "Write", "report"), "plan")

	out := mustRun(t, dir, "ls")
	assert.Contains(t, out, fmt.Sprintf("# %d Work", work))
	assert.Contains(t, out, fmt.Sprintf("# %d Home chores", home))
	assert.Contains(t, out, fmt.Sprintf("[ ] %d Write report", plan))
	assert.Contains(t, out, "0%")

	mustRun(t, dir, "done", fmt.Sprint(plan))
	out = mustRun(t, dir, "ls", "--filter", "undone")
	assert.NotContains(t, out, "Write report")
	out = mustRun(t, dir, "ls", "--filter", "done")
	assert.Contains(t, out, fmt.Sprintf("[x] %d Write report", plan))
	assert.Contains(t, out, "100%")
}

func TestMoveCommand(t *testing.T) {
	dir := newDataDir(t)
	first := createdID(t, mustRun(t, dir, "subject", "add", "First"), "group")
	second := createdID(t, mustRun(t, dir, "subject", "add", "Second"), "group")
	plan := createdID(t, mustRun(t, dir, "add", fmt.Sprint(first)), "plan")

	_, err := run(t, dir, "move", "up", fmt.Sprint(plan))
	assert.Error(t, err, "first group has nothing above it")

	out := mustRun(t, dir, "move", "down", fmt.Sprint(plan))
	assert.Contains(t, out, fmt.Sprintf("to group %d", second))

	_, err = run(t, dir, "move", "sideways", fmt.Sprint(plan))
	assert.Error(t, err)
}

func TestSubjectRemoveNeedsYes(t *testing.T) {
	dir := newDataDir(t)
	id := createdID(t, mustRun(t, dir, "subject", "add", "Trip"), "group")
	mustRun(t, dir, "add", fmt.Sprint(id), "Pack")

	_, err := run(t, dir, "subject", "rm", fmt.Sprint(id))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Contains(t, mustRun(t, dir, "ls"), "Trip")

	out := mustRun(t, dir, "subject", "rm", fmt.Sprint(id), "--yes")
	assert.Contains(t, out, "1 plan(s)")
	assert.Contains(t, mustRun(t, dir, "ls"), "No groups yet.")
}

func TestResetNeedsYes(t *testing.T) {
	dir := newDataDir(t)
	assert.Contains(t, mustRun(t, dir, "reset"), "Nothing to reset")

	mustRun(t, dir, "subject", "add")
	_, err := run(t, dir, "reset")
	require.Error(t, err)

	mustRun(t, dir, "reset", "--yes")
	assert.Contains(t, mustRun(t, dir, "ls"), "No groups yet.")
}

func TestUnknownIDs(t *testing.T) {
	dir := newDataDir(t)

	for _, args := range [][]string{
		{"rm", "42"},
		{"done", "42"},
		{"rename", "42", "x"},
		{"add", "42"},
		{"subject", "rm", "42", "--yes"},
		{"subject", "rename", "42", "x"},
		{"done", "not-a-number"},
	} {
		_, err := run(t, dir, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestRenameDonePlanRefused(t *testing.T) {
	dir := newDataDir(t)
	s := createdID(t, mustRun(t, dir, "subject", "add"), "group")
	p := createdID(t, mustRun(t, dir, "add", fmt.Sprint(s)), "plan")

	out := mustRun(t, dir, "rename", fmt.Sprint(p), "  tidy   up ")
	assert.Contains(t, out, "tidy up ")

	mustRun(t, dir, "done", fmt.Sprint(p))
	_, err := run(t, dir, "rename", fmt.Sprint(p), "again")
	assert.Error(t, err)
}

func TestMemoryStorageForgets(t *testing.T) {
	dir := newDataDir(t)
	mustRun(t, dir, "--storage", "memory", "subject", "add", "Gone")
	assert.Contains(t, mustRun(t, dir, "ls"), "No groups yet.")
}

func TestVersion(t *testing.T) {
	out := mustRun(t, t.TempDir(), "version")
	assert.Contains(t, out, "wille v"+version)
}
