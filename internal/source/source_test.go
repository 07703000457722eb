package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", text)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTextFromArgs(t *testing.T) {
	text, err := TextFromArgs([]string{"hello", "world"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	text, err = TextFromArgs(nil, strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n", text)

	text, err = TextFromArgs([]string{"-"}, strings.NewReader("dash"))
	require.NoError(t, err)
	assert.Equal(t, "dash", text)
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0o644))

	got := make(chan string, 8)
	w, err := Watch(path, 20*time.Millisecond, func(text string, err error) {
		if err == nil {
			got <- text
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("after"), 0o644))

	select {
	case text := <-got:
		assert.Equal(t, "after", text)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
