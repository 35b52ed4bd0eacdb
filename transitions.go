package steady

import (
	"sync"
	"time"
)

// Transition records a single raw status change as observed by an Indicator.
type Transition struct {
	From Status
	To   Status
	At   time.Time
}

// transitionRing is a thread-safe ring buffer for recent status transitions.
// It is volatile diagnostics only; nothing is written anywhere.
type transitionRing struct {
	mu          sync.RWMutex
	transitions []Transition
	size        int
	head        int
	count       int
}

// newTransitionRing creates a new transition ring buffer with the given
// capacity. If size is 0 or negative, the ring buffer is disabled.
func newTransitionRing(size int) *transitionRing {
	if size <= 0 {
		return nil
	}
	return &transitionRing{
		transitions: make([]Transition, size),
		size:        size,
	}
}

// push adds a transition to the ring buffer.
func (r *transitionRing) push(t Transition) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transitions[r.head] = t
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// clear removes all transitions from the ring buffer.
func (r *transitionRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.transitions {
		r.transitions[i] = Transition{}
	}
	r.head = 0
	r.count = 0
}

// all returns all transitions in the ring buffer, oldest first.
func (r *transitionRing) all() []Transition {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	result := make([]Transition, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.transitions[(start+i)%r.size]
	}
	return result
}
