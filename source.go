package steady

import "context"

// Source reports connection status changes and answers for the freshest
// known value. Implementations must emit the current status immediately upon
// Watch() being called so consumers can initialize without waiting for the
// first change.
type Source interface {
	// Watch begins observing the source and returns a channel that emits
	// statuses as they change. The channel is closed when the context is
	// canceled or an unrecoverable error occurs. Statuses are delivered in
	// the order they were observed.
	//
	// Implementations should emit the current status immediately to support
	// initial display state.
	Watch(ctx context.Context) (<-chan Status, error)

	// Latest returns the freshest known raw status without waiting. It is
	// safe to call from any goroutine and is consulted by delayed-reveal
	// callbacks to avoid acting on stale observations.
	Latest() Status
}
