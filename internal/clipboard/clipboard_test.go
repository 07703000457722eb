package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/rematch/internal/highlight"
	"github.com/bethropolis/rematch/internal/pattern"
)

type failing struct{}

func (failing) Copy(string) error { return errors.New("boom") }

func TestCopyMatches(t *testing.T) {
	res, err := highlight.HighlightString(`\d+`, "a1 b22 c333", pattern.MatchOptions{})
	require.NoError(t, err)

	var mem Memory
	n, err := CopyMatches(&mem, res)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1\n22\n333", mem.Text)

	n, err = CopyMatches(failing{}, res)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestCopyMatchesNone(t *testing.T) {
	res, err := highlight.HighlightString(`x`, "abc", pattern.MatchOptions{})
	require.NoError(t, err)

	var mem Memory
	n, err := CopyMatches(&mem, res)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, mem.Text)
}
