package steady

import (
	"context"
	"sync"
)

// Store is an in-process status source that hosts push statuses into.
// It implements Source: every watcher receives the current status
// immediately, then every subsequent Set in delivery order. Set never blocks
// on slow watchers; each subscription drains its own queue.
type Store struct {
	mu     sync.RWMutex
	latest Status
	subs   []*subscription
}

// subscription is one watcher's FIFO delivery queue.
type subscription struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Status
	closed bool
}

// NewStore creates a Store holding the given initial status.
func NewStore(initial Status) *Store {
	return &Store{latest: initial}
}

// Latest returns the most recently set status.
func (s *Store) Latest() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Set publishes a new status to all watchers and updates Latest.
func (s *Store) Set(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = status
	for _, sub := range s.subs {
		sub.enqueue(status)
	}
}

// Watch returns a channel that emits the current status immediately, then
// every subsequent Set in order. The channel is closed when the context is
// canceled.
func (s *Store) Watch(ctx context.Context) (<-chan Status, error) {
	sub := &subscription{}
	sub.cond = sync.NewCond(&sub.mu)

	s.mu.Lock()
	sub.queue = append(sub.queue, s.latest)
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	out := make(chan Status)

	go func() {
		defer close(out)
		defer s.remove(sub)
		for {
			status, ok := sub.next()
			if !ok {
				return
			}
			select {
			case out <- status:
			case <-ctx.Done():
				return
			}
		}
	}()

	// cond.Wait cannot observe the context, so close the subscription when
	// the context ends to wake the pump.
	go func() {
		<-ctx.Done()
		sub.close()
	}()

	return out, nil
}

// remove drops a subscription from the fan-out list.
func (s *Store) remove(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, candidate := range s.subs {
		if candidate == sub {
			s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
			return
		}
	}
}

// enqueue appends a status to the queue and wakes the pump.
func (sub *subscription) enqueue(status Status) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return
	}
	sub.queue = append(sub.queue, status)
	sub.cond.Signal()
}

// next blocks until a status is queued or the subscription is closed.
// Queued statuses are drained before the close is reported.
func (sub *subscription) next() (Status, bool) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	for len(sub.queue) == 0 && !sub.closed {
		sub.cond.Wait()
	}
	if len(sub.queue) == 0 {
		return StatusDisconnected, false
	}

	status := sub.queue[0]
	sub.queue = sub.queue[1:]
	return status, true
}

// close marks the subscription dead and wakes the pump.
func (sub *subscription) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	sub.closed = true
	sub.cond.Broadcast()
}
