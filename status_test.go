package steady

import "testing"

func TestStatus_String_Connected(t *testing.T) {
	if s := StatusConnected.String(); s != "connected" {
		t.Errorf("expected 'connected', got %q", s)
	}
}

func TestStatus_String_Connecting(t *testing.T) {
	if s := StatusConnecting.String(); s != "connecting" {
		t.Errorf("expected 'connecting', got %q", s)
	}
}

func TestStatus_String_Error(t *testing.T) {
	if s := StatusError.String(); s != "error" {
		t.Errorf("expected 'error', got %q", s)
	}
}

func TestStatus_String_Disconnected(t *testing.T) {
	if s := StatusDisconnected.String(); s != "disconnected" {
		t.Errorf("expected 'disconnected', got %q", s)
	}
}

func TestStatus_String_Unknown(t *testing.T) {
	unknown := Status(999)
	if s := unknown.String(); s != "disconnected" {
		t.Errorf("expected 'disconnected', got %q", s)
	}
}

func TestStatus_ZeroValue(t *testing.T) {
	// The zero value must never claim a connection
	var s Status
	if s != StatusDisconnected {
		t.Errorf("expected zero value to be StatusDisconnected, got %s", s)
	}
}

func TestParseStatus_KnownTokens(t *testing.T) {
	cases := map[string]Status{
		"connected":    StatusConnected,
		"connecting":   StatusConnecting,
		"error":        StatusError,
		"disconnected": StatusDisconnected,
	}
	for token, want := range cases {
		got, err := ParseStatus(token)
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", token, err)
		}
		if got != want {
			t.Errorf("ParseStatus(%q) = %s, want %s", token, got, want)
		}
	}
}

func TestParseStatus_CaseInsensitive(t *testing.T) {
	got, err := ParseStatus("  Connected ")
	if err != nil {
		t.Fatalf("ParseStatus error = %v", err)
	}
	if got != StatusConnected {
		t.Errorf("expected StatusConnected, got %s", got)
	}
}

func TestParseStatus_UnknownToken(t *testing.T) {
	got, err := ParseStatus("warp-speed")
	if err == nil {
		t.Fatal("expected error for unknown token")
	}
	if got != StatusDisconnected {
		t.Errorf("expected StatusDisconnected fallback, got %s", got)
	}
}
