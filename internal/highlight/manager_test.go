package highlight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/rematch/internal/pattern"
)

func waitOutcome(t *testing.T, ch <-chan Outcome) Outcome {
	t.Helper()
	select {
	case out := <-ch:
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for highlight outcome")
	}
	return Outcome{}
}

func TestManagerDeliversLatest(t *testing.T) {
	ch := make(chan Outcome, 4)
	m := NewManager(10*time.Millisecond, func(o Outcome) { ch <- o })
	defer m.Close()

	m.Submit(Request{Pattern: "a", Text: "abc"})
	m.Submit(Request{Pattern: "b", Text: "abc"})
	last := m.Submit(Request{Pattern: "c", Text: "abc"})

	out := waitOutcome(t, ch)
	require.NoError(t, out.Err)
	assert.Equal(t, last, out.Seq)
	assert.Equal(t, "c", out.Request.Pattern)
	assert.Equal(t, []string{"c"}, out.Result.MatchedTexts())

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra outcome: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestManagerDeliversPatternError(t *testing.T) {
	ch := make(chan Outcome, 1)
	m := NewManager(time.Millisecond, func(o Outcome) { ch <- o })
	defer m.Close()

	m.Submit(Request{Pattern: "(", Text: "abc"})
	out := waitOutcome(t, ch)
	assert.ErrorIs(t, out.Err, pattern.ErrInvalidPattern)
}

func TestManagerClose(t *testing.T) {
	ch := make(chan Outcome, 1)
	m := NewManager(5*time.Millisecond, func(o Outcome) { ch <- o })

	m.Submit(Request{Pattern: "a", Text: "a"})
	m.Close()
	m.Submit(Request{Pattern: "a", Text: "a"})

	select {
	case out := <-ch:
		t.Fatalf("closed manager delivered %+v", out)
	case <-time.After(50 * time.Millisecond):
	}
}
