package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanadi3/427-A2/internal/codestore"
	"github.com/sanadi3/427-A2/internal/schederr"
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

func TestLoad_HappyPath(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.txt", "A1", "A2")
	b := writeScript(t, dir, "b.txt", "B1")

	store := codestore.New()
	ranges, err := Load(store, []string{a, b})
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, 0, ranges[0].start)
	assert.Equal(t, 1, ranges[0].end)
	assert.Equal(t, 2, ranges[1].start)
	assert.Equal(t, 2, ranges[1].end)
	assert.Equal(t, 3, store.Len())
}

func TestLoad_EmptyScriptIsValid(t *testing.T) {
	dir := t.TempDir()
	empty := writeScript(t, dir, "empty.txt")

	store := codestore.New()
	ranges, err := Load(store, []string{empty})
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 0, ranges[0].start)
	assert.Equal(t, -1, ranges[0].end, "zero-line script is range [0,-1]")
}

func TestLoad_DuplicatePathRejected(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.txt", "A1")

	store := codestore.New()
	_, err := Load(store, []string{a, a})
	assert.ErrorIs(t, err, schederr.ErrDuplicateProgram)
	assert.Equal(t, 0, store.Len(), "nothing should be claimed on a pre-load rejection")
}

func TestLoad_UnreadablePathRollsBackCleanly(t *testing.T) {
	dir := t.TempDir()
	a := writeScript(t, dir, "a.txt", "A1", "A2")
	missing := filepath.Join(dir, "does-not-exist.txt")

	store := codestore.New()
	_, err := Load(store, []string{a, missing})
	assert.ErrorIs(t, err, schederr.ErrLoadFailure)
	assert.Equal(t, 0, store.Len(), "code store must be empty after a failed load")
}

func TestLoad_TooManyScripts(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, MaxScripts+1)
	for i := range paths {
		paths[i] = writeScript(t, dir, string(rune('a'+i))+".txt", "x")
	}
	store := codestore.New()
	_, err := Load(store, paths)
	assert.ErrorIs(t, err, schederr.ErrLoadFailure)
}

func TestLoad_StoreExhaustionRollsBack(t *testing.T) {
	dir := t.TempDir()
	store := codestore.New()
	for i := 0; i < codestore.MemSize-1; i++ {
		store.LoadLine("filler")
	}
	// one slot remains; a 2-line script must fail and roll back
	// entirely, not partially claim the one free slot.
	script := writeScript(t, dir, "a.txt", "A1", "A2")

	_, err := Load(store, []string{script})
	assert.ErrorIs(t, err, schederr.ErrLoadFailure)
	assert.Equal(t, codestore.MemSize-1, store.Len(), "the pre-existing filler lines must be untouched")
}
