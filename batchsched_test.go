package batchsched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndSchedule_FCFS_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.txt", "A1", "A2")
	b := writeScript(t, dir, "b.txt", "B1")

	var order []string
	sched := New(func(line string) int {
		order = append(order, line)
		return 0
	}, NewConfig())

	code, stats, err := sched.LoadAndSchedule([]string{a, b}, FCFS, false)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"A1", "A2", "B1"}, order)
	assert.Equal(t, 3, stats.Instructions)
	assert.Equal(t, 2, stats.Processes)
}

func TestLoadAndSchedule_EmptyScriptRunsCleanly(t *testing.T) {
	dir := t.TempDir()
	empty := writeScript(t, dir, "empty.txt")

	sched := New(func(string) int {
		t.Fatal("ExecuteLine must never be called for a zero-line program")
		return 0
	}, NewConfig())

	code, stats, err := sched.LoadAndSchedule([]string{empty}, FCFS, false)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 0, stats.Instructions)
	assert.Equal(t, 1, stats.Processes, "a zero-line program still completes as a process")
}

func TestLoadAndSchedule_LoadFailureLeavesNothingRunning(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.txt", "A1")
	missing := filepath.Join(dir, "nope.txt")

	called := false
	sched := New(func(string) int {
		called = true
		return 0
	}, NewConfig())

	code, stats, err := sched.LoadAndSchedule([]string{a, missing}, FCFS, false)
	assert.Error(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, RunStats{}, stats)
	assert.False(t, called, "the scheduler must never run after a failed load")
}

func TestLoadAndSchedule_BadPolicyToken(t *testing.T) {
	_, err := ParsePolicy("ROUND_ROBIN")
	assert.Error(t, err)
}

func TestLoadAndSchedule_ForcedFirstAppliesToNextRunOnly(t *testing.T) {
	dir := t.TempDir()
	short := writeScript(t, dir, "short.txt", "S1")
	long := writeScript(t, dir, "long.txt", "L1", "L2", "L3")

	var order []string
	sched := New(func(line string) int {
		order = append(order, line)
		return 0
	}, NewConfig())

	// LoadAndSchedule doesn't expose PIDs directly; force a pid from the
	// first Scheduler's own numbering (starts at 1, in path order: long
	// is path[0] so it gets pid 1).
	sched.SetForcedFirst(1)
	_, _, err := sched.LoadAndSchedule([]string{long, short}, SJF, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L2", "L3", "S1"}, order, "forcing the longer program's pid must override SJF's natural shortest-first pick")

	order = nil
	a2 := writeScript(t, dir, "short2.txt", "T1")
	long2 := writeScript(t, dir, "long2.txt", "U1", "U2")
	_, _, err = sched.LoadAndSchedule([]string{a2, long2}, SJF, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "U1", "U2"}, order, "forced-first must not persist to a later call")
}
