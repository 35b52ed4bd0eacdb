package steady

// Display is the rendering-ready projection of a displayed status. It carries
// everything a UI needs to draw the indicator and nothing about how to draw it.
type Display struct {
	Status    Status
	Gradient  [2]string
	Icon      string
	IconColor string
	Label     string
}

// DisplayFor maps a status to its display projection. The mapping is pure and
// total: any value outside the four known statuses falls through to the
// Disconnected arm.
func DisplayFor(s Status) Display {
	switch s {
	case StatusConnected:
		return Display{
			Status:    StatusConnected,
			Gradient:  [2]string{"#4CAF50", "#81C784"},
			Icon:      "wifi",
			IconColor: "#FFFFFF",
			Label:     "Connected",
		}
	case StatusConnecting:
		return Display{
			Status:    StatusConnecting,
			Gradient:  [2]string{"#FFA726", "#FFB74D"},
			Icon:      "wifi-sync",
			IconColor: "#FFFFFF",
			Label:     "Connecting...",
		}
	case StatusError:
		return Display{
			Status:    StatusError,
			Gradient:  [2]string{"#FF7043", "#FFA726"},
			Icon:      "sync-alert",
			IconColor: "#FFFFFF",
			Label:     "Reconnecting...",
		}
	default:
		return Display{
			Status:    StatusDisconnected,
			Gradient:  [2]string{"#E53935", "#EF5350"},
			Icon:      "wifi-off",
			IconColor: "#FFFFFF",
			Label:     "Disconnected",
		}
	}
}
