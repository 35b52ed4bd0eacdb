package steady

import "github.com/zoobzio/capitan"

// Field keys for Indicator events.
var (
	// KeyStatus is the status carried by a change or reveal.
	KeyStatus = capitan.NewStringKey("status")

	// KeyOldStatus is the previously observed raw status.
	KeyOldStatus = capitan.NewStringKey("old_status")

	// KeyNewStatus is the newly observed raw status.
	KeyNewStatus = capitan.NewStringKey("new_status")

	// KeyDisplayed is the status currently authorized for display.
	KeyDisplayed = capitan.NewStringKey("displayed")

	// KeyError is the error message when a source operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDelay is the fixed disconnection delay.
	KeyDelay = capitan.NewDurationKey("delay")

	// KeyRemaining is the time left until a scheduled reveal fires.
	KeyRemaining = capitan.NewDurationKey("remaining")

	// KeyElapsed is the time elapsed since the first disconnection.
	KeyElapsed = capitan.NewDurationKey("elapsed")

	// KeyHeldFor is how long a reveal was held back before firing.
	KeyHeldFor = capitan.NewDurationKey("held_for")

	// KeySourcePath is the path watched by a file-backed source.
	KeySourcePath = capitan.NewStringKey("source_path")
)
