package countdown

// EventKind identifies the transition a countdown second produced. Each
// elapsed second yields exactly one event, carrying the most significant
// transition for that second.
type EventKind string

const (
	// EventTick is an ordinary one-second decrement.
	EventTick EventKind = "tick"
	// EventWarn is a tick inside the pre-boundary warning window.
	EventWarn EventKind = "warn"
	// EventWarmupEnd marks the end of the warmup lead-in.
	EventWarmupEnd EventKind = "warmup_end"
	// EventIntervalEnd marks an interval boundary: the interval remainder
	// wrapped and the completed counter was incremented.
	EventIntervalEnd EventKind = "interval_end"
	// EventSessionEnd marks the end of the whole session.
	EventSessionEnd EventKind = "session_end"
	// EventStateChange reports a lifecycle change (start, pause, resume,
	// reset) rather than an elapsed second.
	EventStateChange EventKind = "state_change"
)

// Event couples a transition with an atomically-consistent state snapshot.
// The snapshot is a value copy, so consumers never observe a half-updated
// countdown.
type Event struct {
	Kind  EventKind
	State State
}
