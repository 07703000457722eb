package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypePatternChanged, func(e Event) bool {
		calls = append(calls, "first:"+e.Data.(PatternChangedData).Pattern)
		return false
	})
	m.Subscribe(TypePatternChanged, func(e Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypePatternChanged, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	consumed := m.Dispatch(TypePatternChanged, PatternChangedData{Pattern: "a+"})
	assert.True(t, consumed)
	assert.Equal(t, []string{"first:a+", "second"}, calls)

	assert.False(t, m.Dispatch(TypeAppQuit, AppQuitData{}))
}

func TestUnsubscribe(t *testing.T) {
	m := NewManager()
	count := 0
	id := m.Subscribe(TypeTextLoaded, func(Event) bool { count++; return false })
	m.Subscribe(TypeTextLoaded, func(Event) bool { count += 10; return false })

	m.Dispatch(TypeTextLoaded, TextLoadedData{})
	m.Unsubscribe(id)
	m.Unsubscribe(id)
	m.Dispatch(TypeTextLoaded, TextLoadedData{})

	assert.Equal(t, 21, count)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Highlighted", TypeHighlighted.String())
	assert.Equal(t, "Unknown", Type(999).String())
}
