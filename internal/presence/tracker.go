// Package presence keeps per-user live connection counts.
package presence

import "sync"

type Tracker struct {
	mu     sync.Mutex
	counts map[int64]int
}

func NewTracker() *Tracker {
	return &Tracker{counts: make(map[int64]int)}
}

// Connect records a new connection and reports whether it is the user's first.
func (t *Tracker) Connect(userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[userID]++
	return t.counts[userID] == 1
}

// Disconnect drops a connection and reports whether it was the user's last.
// Disconnecting an unknown user is a no-op that returns false.
func (t *Tracker) Disconnect(userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.counts[userID]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(t.counts, userID)
		return true
	}
	t.counts[userID] = n - 1
	return false
}

func (t *Tracker) IsOnline(userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[userID] > 0
}

// FilterOnline returns the online subset of userIDs, preserving order.
func (t *Tracker) FilterOnline(userIDs []int64) []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	online := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		if t.counts[id] > 0 {
			online = append(online, id)
		}
	}
	return online
}

// Count returns the number of users with at least one connection.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.counts)
}
