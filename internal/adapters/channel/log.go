package channel

import (
	"sync"

	"github.com/bnema/chatline/internal/domain"
)

// MessageLog is the ordered record of inbound payloads of one handle. A zero
// capacity keeps every entry.
type MessageLog struct {
	mu       sync.Mutex
	entries  []string
	capacity int
	policy   domain.EvictionPolicy
	evicted  int
	changed  chan struct{}
}

func NewMessageLog(capacity int, policy domain.EvictionPolicy) *MessageLog {
	if capacity < 0 {
		capacity = 0
	}
	if policy == "" {
		policy = domain.EvictOldest
	}

	return &MessageLog{
		capacity: capacity,
		policy:   policy,
		changed:  make(chan struct{}),
	}
}

// Append records payload and reports whether it was kept.
func (l *MessageLog) Append(payload string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.capacity > 0 && len(l.entries) >= l.capacity {
		l.evicted++
		if l.policy == domain.EvictNewest {
			return false
		}
		l.entries[0] = ""
		l.entries = l.entries[1:]
	}

	l.entries = append(l.entries, payload)
	l.notifyLocked()
	return true
}

func (l *MessageLog) Snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *MessageLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// Evicted counts entries dropped or rejected because the log was full.
func (l *MessageLog) Evicted() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.evicted
}

func (l *MessageLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return
	}
	l.entries = nil
	l.notifyLocked()
}

// Changed returns a channel closed by the next mutation of the log.
func (l *MessageLog) Changed() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.changed
}

func (l *MessageLog) notifyLocked() {
	close(l.changed)
	l.changed = make(chan struct{})
}
