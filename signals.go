package steady

import "github.com/zoobzio/capitan"

// Indicator lifecycle signals.
var (
	// IndicatorStarted is emitted when an Indicator begins watching its source.
	IndicatorStarted = capitan.NewSignal(
		"steady.indicator.started",
		"Indicator watching started",
	)

	// IndicatorStopped is emitted when an Indicator stops watching.
	IndicatorStopped = capitan.NewSignal(
		"steady.indicator.stopped",
		"Indicator watching stopped",
	)

	// StatusReceived is emitted when a status change is delivered by the source.
	StatusReceived = capitan.NewSignal(
		"steady.status.received",
		"Status change received from source",
	)

	// StatusChanged is emitted when the raw status transitions to a different
	// value. Repeated deliveries of the same status do not emit it.
	StatusChanged = capitan.NewSignal(
		"steady.status.changed",
		"Raw status transitioned",
	)
)

// Reveal lifecycle signals.
var (
	// RevealScheduled is emitted when a delayed reveal timer is armed.
	RevealScheduled = capitan.NewSignal(
		"steady.reveal.scheduled",
		"Delayed reveal timer armed",
	)

	// RevealCanceled is emitted when a pending reveal timer is canceled by a
	// newer status observation or by teardown.
	RevealCanceled = capitan.NewSignal(
		"steady.reveal.canceled",
		"Pending reveal timer canceled",
	)

	// IndicatorRevealed is emitted when the indicator becomes visible.
	IndicatorRevealed = capitan.NewSignal(
		"steady.indicator.revealed",
		"Indicator revealed",
	)

	// IndicatorHidden is emitted when the indicator becomes hidden again.
	IndicatorHidden = capitan.NewSignal(
		"steady.indicator.hidden",
		"Indicator hidden",
	)

	// RefreshTriggered is emitted when the external refresh hook is invoked.
	RefreshTriggered = capitan.NewSignal(
		"steady.refresh.triggered",
		"External refresh hook invoked",
	)
)

// Source decode signals.
var (
	// SourceDecodeFailed is emitted when a source document cannot be decoded.
	SourceDecodeFailed = capitan.NewSignal(
		"steady.source.decode.failed",
		"Status document decode failed",
	)

	// SourceValidationFailed is emitted when a decoded source document fails
	// validation.
	SourceValidationFailed = capitan.NewSignal(
		"steady.source.validation.failed",
		"Status document validation failed",
	)
)
