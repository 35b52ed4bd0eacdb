package steady

import (
	"fmt"
	"strings"
)

// Status represents the raw connection status reported by a source.
type Status int32

const (
	// StatusDisconnected indicates no connection exists and none is being
	// attempted. It is the zero value so uninitialized state never claims
	// a connection.
	StatusDisconnected Status = iota

	// StatusConnecting indicates a connection attempt is in progress.
	StatusConnecting

	// StatusConnected indicates the connection is established and healthy.
	StatusConnected

	// StatusError indicates the last connection attempt failed. The link is
	// expected to retry; consumers display this as a reconnecting state, not
	// as a fault.
	StatusError
)

// String returns the string representation of the status.
// Unrecognized values report as "disconnected".
func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusConnecting:
		return "connecting"
	case StatusError:
		return "error"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "disconnected"
	}
}

// ParseStatus converts a status token to a Status. Matching is
// case-insensitive. Unknown tokens return an error so sources can skip the
// update and keep their last known value.
func ParseStatus(token string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "connected":
		return StatusConnected, nil
	case "connecting":
		return StatusConnecting, nil
	case "error":
		return StatusError, nil
	case "disconnected":
		return StatusDisconnected, nil
	default:
		return StatusDisconnected, fmt.Errorf("unknown connection status %q", token)
	}
}
