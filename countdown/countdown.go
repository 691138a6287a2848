// Package countdown implements the interval countdown engine. The engine owns
// all timing state on a dedicated goroutine and communicates with the rest of
// the program exclusively through commands and events, so the UI never shares
// mutable state with the timing loop.
package countdown

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dbalogun/pulse/internal/apperr"
)

// pollInterval is how often the engine wakes to check the wall clock. Progress
// is derived from elapsed wall time rather than tick counts, so a loop that
// wakes late (suspended process, sleeping machine) catches up without drift.
const pollInterval = 100 * time.Millisecond

// warnWindow is the pre-boundary window during which warning events are
// emitted for countdown cueing.
const warnWindow = 3 * time.Second

var (
	errInvalidInterval = &apperr.Error{
		Message: "interval length must be at least one second",
	}

	errInvalidTotal = &apperr.Error{
		Message: "session duration must be at least one second",
	}

	errIntervalTooLong = &apperr.Error{
		Message: "interval length cannot exceed the session duration",
	}
)

// Status is the lifecycle state of the countdown.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Settings configures a countdown session.
type Settings struct {
	// Interval is the length of one repeating interval.
	Interval time.Duration
	// Total is the overall session duration.
	Total time.Duration
	// Warmup is an optional lead-in before the session proper begins.
	Warmup time.Duration
}

// Validate reports whether the settings describe a runnable session.
func (s Settings) Validate() error {
	if s.Interval < time.Second {
		return errInvalidInterval
	}

	if s.Total < time.Second {
		return errInvalidTotal
	}

	if s.Interval > s.Total {
		return errIntervalTooLong
	}

	return nil
}

// State is a consistent snapshot of the countdown, taken once per event.
type State struct {
	// EndTime is the projected wall-clock end of the session.
	EndTime time.Time `json:"end_time"`
	// Status is the engine lifecycle state.
	Status Status `json:"status"`
	// WarmupRemaining is the time left in the warmup lead-in.
	WarmupRemaining time.Duration `json:"warmup_remaining"`
	// IntervalRemaining is the time left in the current interval.
	IntervalRemaining time.Duration `json:"interval_remaining"`
	// TotalRemaining is the time left in the whole session.
	TotalRemaining time.Duration `json:"total_remaining"`
	// IntervalsCompleted counts the interval boundaries crossed so far.
	IntervalsCompleted int `json:"intervals_completed"`
}

// InWarmup reports whether the session is still in its warmup lead-in.
func (s State) InWarmup() bool {
	return s.WarmupRemaining > 0
}

type command int

const (
	cmdStart command = iota
	cmdPause
	cmdResume
	cmdToggle
	cmdReset
	cmdStop
)

// Engine runs a countdown session. Create one with New, launch it with Run,
// then drive it with the command methods and consume Events.
type Engine struct {
	clock    clockwork.Clock
	events   chan Event
	cmds     chan command
	settings Settings
}

// New returns an engine for the given settings. The clock is injected so
// tests can drive the countdown deterministically.
func New(settings Settings, clock clockwork.Clock) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Engine{
		clock:    clock,
		settings: settings,
		events:   make(chan Event, 64),
		cmds:     make(chan command, 8),
	}, nil
}

// Events returns the channel on which state events are delivered. It is
// closed when the engine exits.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Start begins the countdown from idle.
func (e *Engine) Start() { e.send(cmdStart) }

// Pause freezes a running countdown.
func (e *Engine) Pause() { e.send(cmdPause) }

// Resume continues a paused countdown.
func (e *Engine) Resume() { e.send(cmdResume) }

// Toggle starts, pauses, or resumes depending on the current status.
func (e *Engine) Toggle() { e.send(cmdToggle) }

// Reset returns the countdown to a fresh idle state.
func (e *Engine) Reset() { e.send(cmdReset) }

// Stop terminates the engine goroutine.
func (e *Engine) Stop() { e.send(cmdStop) }

func (e *Engine) send(cmd command) {
	select {
	case e.cmds <- cmd:
	default:
	}
}

// Run executes the timing loop until the context is cancelled or Stop is
// called. It must be launched on its own goroutine.
func (e *Engine) Run(ctx context.Context) {
	defer close(e.events)

	ticker := e.clock.NewTicker(pollInterval)
	defer ticker.Stop()

	rs := newRunState(e.settings)

	e.emit(ctx, EventStateChange, rs)

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-e.cmds:
			if cmd == cmdStop {
				return
			}

			if e.apply(rs, cmd) {
				e.emit(ctx, EventStateChange, rs)
			}
		case <-ticker.Chan():
			e.advance(ctx, rs)
		}
	}
}

// apply handles a control command and reports whether the state changed.
func (e *Engine) apply(rs *runState, cmd command) bool {
	switch cmd {
	case cmdStart:
		return rs.start(e.clock.Now())
	case cmdPause:
		return rs.pause(e.clock.Now())
	case cmdResume:
		return rs.resume(e.clock.Now())
	case cmdToggle:
		switch rs.status {
		case StatusIdle:
			return rs.start(e.clock.Now())
		case StatusRunning:
			return rs.pause(e.clock.Now())
		case StatusPaused:
			return rs.resume(e.clock.Now())
		}

		return false
	case cmdReset:
		*rs = *newRunState(e.settings)
		return true
	}

	return false
}

// advance processes every wall-clock second that elapsed since the last wake.
// Each crossed second yields exactly one event, so a delayed wake emits the
// full run of missed transitions in order.
func (e *Engine) advance(ctx context.Context, rs *runState) {
	if rs.status != StatusRunning {
		return
	}

	elapsed := rs.elapsedBase + e.clock.Since(rs.startTime)
	whole := int(elapsed / time.Second)

	for rs.processed < whole {
		rs.processed++

		kind := rs.step()

		e.emit(ctx, kind, rs)

		if rs.status == StatusCompleted {
			return
		}
	}
}

func (e *Engine) emit(ctx context.Context, kind EventKind, rs *runState) {
	ev := Event{
		Kind:  kind,
		State: rs.snapshot(),
	}

	select {
	case e.events <- ev:
	case <-ctx.Done():
	}
}

// runState holds the countdown bookkeeping. It is only ever touched by the
// Run goroutine.
type runState struct {
	startTime    time.Time
	endTime      time.Time
	status       Status
	settings     Settings
	elapsedBase  time.Duration
	warmupLeft   time.Duration
	totalLeft    time.Duration
	intervalLeft time.Duration
	processed    int
	completed    int
}

func newRunState(settings Settings) *runState {
	return &runState{
		status:       StatusIdle,
		settings:     settings,
		warmupLeft:   settings.Warmup,
		totalLeft:    settings.Total,
		intervalLeft: settings.Interval,
	}
}

func (rs *runState) remaining() time.Duration {
	return rs.warmupLeft + rs.totalLeft
}

func (rs *runState) start(now time.Time) bool {
	if rs.status != StatusIdle {
		return false
	}

	rs.startTime = now
	rs.endTime = now.Add(rs.remaining())
	rs.status = StatusRunning

	return true
}

func (rs *runState) pause(now time.Time) bool {
	if rs.status != StatusRunning {
		return false
	}

	rs.elapsedBase += now.Sub(rs.startTime)
	rs.status = StatusPaused

	return true
}

func (rs *runState) resume(now time.Time) bool {
	if rs.status != StatusPaused {
		return false
	}

	rs.startTime = now
	rs.endTime = now.Add(rs.remaining())
	rs.status = StatusRunning

	return true
}

// step advances the countdown by one second and returns the kind of event the
// second produced. The total is checked before the interval, so a session
// always completes at zero and never goes negative.
func (rs *runState) step() EventKind {
	if rs.warmupLeft > 0 {
		rs.warmupLeft -= time.Second

		if rs.warmupLeft <= 0 {
			rs.warmupLeft = 0
			return EventWarmupEnd
		}

		if rs.warmupLeft <= warnWindow {
			return EventWarn
		}

		return EventTick
	}

	rs.totalLeft -= time.Second

	if rs.totalLeft <= 0 {
		rs.totalLeft = 0
		rs.intervalLeft = 0
		rs.status = StatusCompleted

		return EventSessionEnd
	}

	rs.intervalLeft -= time.Second

	if rs.intervalLeft <= 0 {
		rs.intervalLeft = rs.settings.Interval
		rs.completed++

		return EventIntervalEnd
	}

	if rs.intervalLeft <= warnWindow {
		return EventWarn
	}

	return EventTick
}

func (rs *runState) snapshot() State {
	return State{
		EndTime:            rs.endTime,
		Status:             rs.status,
		WarmupRemaining:    rs.warmupLeft,
		IntervalRemaining:  rs.intervalLeft,
		TotalRemaining:     rs.totalLeft,
		IntervalsCompleted: rs.completed,
	}
}
