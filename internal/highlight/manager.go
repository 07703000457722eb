package highlight

import (
	"sync"
	"time"

	"github.com/bethropolis/rematch/internal/logger"
)

// DebounceDuration is the default quiet period before a submitted request runs.
const DebounceDuration = 65 * time.Millisecond

// Outcome is the result of one scheduled request.
type Outcome struct {
	Seq     uint64
	Request Request
	Result  Result
	Err     error
}

// Manager runs highlight requests in the background, debounced, and delivers
// only the outcome of the most recently submitted request.
// At most one request runs at a time.
type Manager struct {
	delay   time.Duration
	deliver func(Outcome)

	mu        sync.Mutex // Protects everything below
	timer     *time.Timer
	pending   *Request
	seq       uint64 // Sequence number of the latest submission
	isRunning bool
	closed    bool
}

// NewManager creates a manager. deliver is called from a background goroutine.
func NewManager(delay time.Duration, deliver func(Outcome)) *Manager {
	if delay <= 0 {
		delay = DebounceDuration
	}
	return &Manager{delay: delay, deliver: deliver}
}

// Submit queues req, replacing any request still waiting, and restarts the
// debounce timer. It returns the request's sequence number.
func (m *Manager) Submit(req Request) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	if m.closed {
		return m.seq
	}
	m.pending = &req

	if m.timer != nil {
		m.timer.Reset(m.delay)
		logger.DebugTagf("highlight", "HighlightManager: Debounce timer reset (seq %d).", m.seq)
		return m.seq
	}
	m.timer = time.AfterFunc(m.delay, m.run)
	return m.seq
}

func (m *Manager) run() {
	m.mu.Lock()
	m.timer = nil

	if m.closed || m.pending == nil {
		m.mu.Unlock()
		return
	}
	if m.isRunning {
		// Try again once the running request is done.
		m.timer = time.AfterFunc(m.delay, m.run)
		m.mu.Unlock()
		return
	}

	req := *m.pending
	m.pending = nil
	seq := m.seq
	m.isRunning = true
	m.mu.Unlock()

	go func() {
		res, err := Highlight(req)

		m.mu.Lock()
		m.isRunning = false
		stale := seq != m.seq || m.closed
		m.mu.Unlock()

		if stale {
			logger.DebugTagf("highlight", "HighlightManager: Dropping stale outcome (seq %d).", seq)
			return
		}
		m.deliver(Outcome{Seq: seq, Request: req, Result: res, Err: err})
	}()
}

// Close stops the timer and discards pending and running requests.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.pending = nil
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
