package steady

import (
	"testing"
	"time"
)

func tr(from, to Status) Transition {
	return Transition{From: from, To: to, At: time.Unix(0, 0)}
}

func TestTransitionRing_NilSafe(t *testing.T) {
	var r *transitionRing

	// All operations should be safe on nil
	r.push(tr(StatusConnected, StatusDisconnected))
	r.clear()

	if r.all() != nil {
		t.Error("expected nil from nil ring")
	}
}

func TestTransitionRing_ZeroSize(t *testing.T) {
	r := newTransitionRing(0)
	if r != nil {
		t.Error("expected nil ring for size 0")
	}
}

func TestTransitionRing_NegativeSize(t *testing.T) {
	r := newTransitionRing(-1)
	if r != nil {
		t.Error("expected nil ring for negative size")
	}
}

func TestTransitionRing_SingleTransition(t *testing.T) {
	r := newTransitionRing(3)

	r.push(tr(StatusConnected, StatusDisconnected))

	all := r.all()
	if len(all) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(all))
	}
	if all[0].From != StatusConnected || all[0].To != StatusDisconnected {
		t.Errorf("unexpected transition %+v", all[0])
	}
}

func TestTransitionRing_FillsWithoutWrapping(t *testing.T) {
	r := newTransitionRing(3)

	r.push(tr(StatusConnected, StatusConnecting))
	r.push(tr(StatusConnecting, StatusError))
	r.push(tr(StatusError, StatusDisconnected))

	all := r.all()
	if len(all) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(all))
	}

	// Oldest first
	if all[0].To != StatusConnecting {
		t.Error("expected connecting first")
	}
	if all[1].To != StatusError {
		t.Error("expected error second")
	}
	if all[2].To != StatusDisconnected {
		t.Error("expected disconnected third")
	}
}

func TestTransitionRing_WrapsAndEvictsOldest(t *testing.T) {
	r := newTransitionRing(3)

	r.push(tr(StatusConnected, StatusConnecting))
	r.push(tr(StatusConnecting, StatusError))
	r.push(tr(StatusError, StatusDisconnected))
	r.push(tr(StatusDisconnected, StatusConnected)) // Should evict the first

	all := r.all()
	if len(all) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(all))
	}

	if all[0].To != StatusError {
		t.Error("expected error first after wrap")
	}
	if all[2].To != StatusConnected {
		t.Error("expected connected last")
	}
}

func TestTransitionRing_MultipleWraps(t *testing.T) {
	r := newTransitionRing(2)

	for i := 0; i < 10; i++ {
		r.push(tr(StatusConnected, StatusDisconnected))
	}

	all := r.all()
	if len(all) != 2 {
		t.Errorf("expected 2 transitions after multiple wraps, got %d", len(all))
	}
}

func TestTransitionRing_Clear(t *testing.T) {
	r := newTransitionRing(3)

	r.push(tr(StatusConnected, StatusDisconnected))
	r.push(tr(StatusDisconnected, StatusConnected))

	r.clear()

	if all := r.all(); all != nil {
		t.Errorf("expected nil after clear, got %v", all)
	}
}

func TestTransitionRing_EmptyAll(t *testing.T) {
	r := newTransitionRing(3)

	if all := r.all(); all != nil {
		t.Errorf("expected nil for empty ring, got %v", all)
	}
}
