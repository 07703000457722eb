package statusbar

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/rematch/internal/pattern"
)

func TestText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetSource("notes.txt")
	sb.SetResult(pattern.EngineRE2, 1, false)

	text, isErr := sb.Text()
	assert.Equal(t, "notes.txt -- 1 match -- re2", text)
	assert.False(t, isErr)

	sb.SetResult(pattern.EngineBacktrack, 100, true)
	text, _ = sb.Text()
	assert.Equal(t, "notes.txt -- 100 matches (limit reached, more not shown) -- backtrack", text)

	sb.SetError(errors.New("invalid regex: ("))
	text, isErr = sb.Text()
	assert.Equal(t, "invalid regex: (", text)
	assert.True(t, isErr)

	sb.SetResult(pattern.EngineRE2, 0, false)
	text, isErr = sb.Text()
	assert.Equal(t, "notes.txt -- 0 matches -- re2", text)
	assert.False(t, isErr)
}

func TestTemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("copied %d matches", 3)
	text, _ := sb.Text()
	assert.Equal(t, "copied 3 matches", text)

	now = now.Add(5 * time.Second)
	text, _ = sb.Text()
	assert.Equal(t, "[text] -- 0 matches", text)
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 3)

	sb := New(DefaultConfig())
	sb.SetSource("日本.txt")
	sb.Draw(screen, 20, 3)

	r, _, style, width := screen.GetContent(0, 2)
	assert.Equal(t, '日', r)
	assert.Equal(t, 2, width)
	assert.Equal(t, DefaultConfig().StyleDefault, style)

	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, '本', r)
}
