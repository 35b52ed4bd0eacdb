package steady

import "testing"

func TestDisplayFor_Connected(t *testing.T) {
	d := DisplayFor(StatusConnected)
	if d.Status != StatusConnected {
		t.Errorf("expected StatusConnected, got %s", d.Status)
	}
	if d.Label != "Connected" {
		t.Errorf("expected label 'Connected', got %q", d.Label)
	}
	if d.Icon != "wifi" {
		t.Errorf("expected icon 'wifi', got %q", d.Icon)
	}
}

func TestDisplayFor_Connecting(t *testing.T) {
	d := DisplayFor(StatusConnecting)
	if d.Status != StatusConnecting {
		t.Errorf("expected StatusConnecting, got %s", d.Status)
	}
	if d.Label != "Connecting..." {
		t.Errorf("expected label 'Connecting...', got %q", d.Label)
	}
}

func TestDisplayFor_Error(t *testing.T) {
	// An error link is presented as reconnecting, not as a fault
	d := DisplayFor(StatusError)
	if d.Status != StatusError {
		t.Errorf("expected StatusError, got %s", d.Status)
	}
	if d.Label != "Reconnecting..." {
		t.Errorf("expected label 'Reconnecting...', got %q", d.Label)
	}
}

func TestDisplayFor_Disconnected(t *testing.T) {
	d := DisplayFor(StatusDisconnected)
	if d.Status != StatusDisconnected {
		t.Errorf("expected StatusDisconnected, got %s", d.Status)
	}
	if d.Label != "Disconnected" {
		t.Errorf("expected label 'Disconnected', got %q", d.Label)
	}
	if d.Icon != "wifi-off" {
		t.Errorf("expected icon 'wifi-off', got %q", d.Icon)
	}
}

func TestDisplayFor_UnknownFallsThroughToDisconnected(t *testing.T) {
	d := DisplayFor(Status(999))
	if d.Status != StatusDisconnected {
		t.Errorf("expected unknown status to map to StatusDisconnected, got %s", d.Status)
	}
	if d != DisplayFor(StatusDisconnected) {
		t.Error("expected unknown status to produce the Disconnected projection")
	}
}

func TestDisplayFor_Deterministic(t *testing.T) {
	for _, s := range []Status{StatusConnected, StatusConnecting, StatusError, StatusDisconnected} {
		if DisplayFor(s) != DisplayFor(s) {
			t.Errorf("expected identical projections for %s", s)
		}
	}
}

func TestDisplayFor_AllVariantsPopulated(t *testing.T) {
	for _, s := range []Status{StatusConnected, StatusConnecting, StatusError, StatusDisconnected} {
		d := DisplayFor(s)
		if d.Label == "" || d.Icon == "" || d.IconColor == "" {
			t.Errorf("expected populated projection for %s, got %+v", s, d)
		}
		if d.Gradient[0] == "" || d.Gradient[1] == "" {
			t.Errorf("expected gradient stops for %s", s)
		}
	}
}
