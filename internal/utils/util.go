package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in s.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	currentRune := 0
	for byteOffset := range s {
		if currentRune == runeIndex {
			return byteOffset
		}
		currentRune++
	}
	if currentRune == runeIndex {
		return len(s)
	}
	return -1
}

// InsertRune inserts r before the rune at runeIndex and returns the new string.
// Out-of-range indexes append.
func InsertRune(s string, runeIndex int, r rune) string {
	off := RuneIndexToByteOffset(s, runeIndex)
	if off < 0 {
		off = len(s)
	}
	return s[:off] + string(r) + s[off:]
}

// DeleteRune removes the rune at runeIndex. Out-of-range indexes leave s unchanged.
func DeleteRune(s string, runeIndex int) string {
	if runeIndex < 0 {
		return s
	}
	start := RuneIndexToByteOffset(s, runeIndex)
	if start < 0 || start >= len(s) {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[start:])
	return s[:start] + s[start+size:]
}

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce calls the provided function after the specified duration,
// canceling any previous pending calls
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels a pending call, if any.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
