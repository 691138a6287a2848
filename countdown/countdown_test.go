package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{
			name:     "valid",
			settings: Settings{Interval: 30 * time.Second, Total: 20 * time.Minute},
		},
		{
			name:     "sub-second interval",
			settings: Settings{Interval: 500 * time.Millisecond, Total: time.Minute},
			wantErr:  true,
		},
		{
			name:     "zero total",
			settings: Settings{Interval: 30 * time.Second},
			wantErr:  true,
		},
		{
			name:     "interval longer than session",
			settings: Settings{Interval: time.Hour, Total: time.Minute},
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %t", err, tc.wantErr)
			}
		})
	}
}

// drain steps the countdown to completion and returns every event kind in
// order.
func drain(rs *runState) []EventKind {
	var kinds []EventKind

	for rs.status == StatusRunning {
		kinds = append(kinds, rs.step())
	}

	return kinds
}

func TestStepSequence(t *testing.T) {
	rs := newRunState(Settings{
		Interval: 3 * time.Second,
		Total:    7 * time.Second,
	})
	rs.start(time.Now())

	want := []EventKind{
		EventWarn,        // interval 2s left
		EventWarn,        // interval 1s left
		EventIntervalEnd, // boundary, wraps to 3s
		EventWarn,
		EventWarn,
		EventIntervalEnd,
		EventSessionEnd, // total hits zero before the third boundary
	}

	if diff := cmp.Diff(want, drain(rs)); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}

	if rs.totalLeft != 0 {
		t.Errorf("total remaining = %v after completion, want 0", rs.totalLeft)
	}

	if rs.completed != 2 {
		t.Errorf("intervals completed = %d, want 2", rs.completed)
	}
}

func TestIntervalCounterIncrementsOnBoundariesOnly(t *testing.T) {
	interval := 4 * time.Second
	total := 20 * time.Second

	rs := newRunState(Settings{Interval: interval, Total: total})
	rs.start(time.Now())

	boundaries := 0

	for sec := 1; rs.status == StatusRunning; sec++ {
		before := rs.completed
		kind := rs.step()

		if kind == EventIntervalEnd {
			boundaries++

			if sec%int(interval.Seconds()) != 0 {
				t.Errorf("boundary event at second %d, not a multiple of %v", sec, interval)
			}

			if rs.completed != before+1 {
				t.Errorf("counter did not increment on boundary at second %d", sec)
			}

			if rs.intervalLeft != interval {
				t.Errorf("interval remaining = %v after wrap, want %v", rs.intervalLeft, interval)
			}
		} else if rs.completed != before {
			t.Errorf("counter changed without a boundary at second %d", sec)
		}
	}

	// 20s / 4s: the final boundary coincides with session completion, which
	// takes precedence, so four boundaries are observed.
	if boundaries != 4 {
		t.Errorf("boundary events = %d, want 4", boundaries)
	}
}

func TestCountdownInvariants(t *testing.T) {
	interval := 7 * time.Second
	total := time.Minute

	rs := newRunState(Settings{Interval: interval, Total: total})
	rs.start(time.Now())

	prevTotal := rs.totalLeft

	for rs.status == StatusRunning {
		rs.step()

		if rs.totalLeft < 0 || rs.totalLeft > total {
			t.Fatalf("total remaining %v out of [0, %v]", rs.totalLeft, total)
		}

		if rs.totalLeft > prevTotal {
			t.Fatalf("total remaining increased from %v to %v", prevTotal, rs.totalLeft)
		}

		prevTotal = rs.totalLeft

		if rs.status == StatusRunning &&
			(rs.intervalLeft <= 0 || rs.intervalLeft > interval) {
			t.Fatalf("interval remaining %v out of (0, %v]", rs.intervalLeft, interval)
		}
	}

	if rs.status != StatusCompleted {
		t.Errorf("status = %v after drain, want %v", rs.status, StatusCompleted)
	}
}

func TestWarningWindow(t *testing.T) {
	rs := newRunState(Settings{
		Interval: 10 * time.Second,
		Total:    time.Minute,
	})
	rs.start(time.Now())

	for i := 0; i < 10; i++ {
		kind := rs.step()

		left := rs.intervalLeft
		inWindow := kind != EventIntervalEnd &&
			left >= time.Second && left <= warnWindow

		if inWindow && kind != EventWarn {
			t.Errorf("interval remaining %v produced %v, want %v", left, kind, EventWarn)
		}

		if !inWindow && kind == EventWarn {
			t.Errorf("warning emitted with interval remaining %v", left)
		}
	}
}

func TestWarmupPrecedesSession(t *testing.T) {
	rs := newRunState(Settings{
		Interval: 5 * time.Second,
		Total:    10 * time.Second,
		Warmup:   2 * time.Second,
	})
	rs.start(time.Now())

	if kind := rs.step(); kind != EventWarn {
		t.Errorf("first warmup second = %v, want %v", kind, EventWarn)
	}

	if rs.totalLeft != 10*time.Second {
		t.Errorf("total decremented during warmup: %v", rs.totalLeft)
	}

	if kind := rs.step(); kind != EventWarmupEnd {
		t.Errorf("final warmup second = %v, want %v", kind, EventWarmupEnd)
	}

	if kind := rs.step(); kind != EventTick {
		t.Errorf("first session second = %v, want %v", kind, EventTick)
	}

	if rs.totalLeft != 9*time.Second {
		t.Errorf("total remaining = %v after first session second, want 9s", rs.totalLeft)
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	clock := clockwork.NewFakeClock()

	rs := newRunState(Settings{
		Interval: 5 * time.Second,
		Total:    time.Minute,
	})

	rs.start(clock.Now())
	clock.Advance(10 * time.Second)
	rs.pause(clock.Now())

	if rs.elapsedBase != 10*time.Second {
		t.Fatalf("elapsed base = %v after pause, want 10s", rs.elapsedBase)
	}

	// Time spent paused must not count towards the session.
	clock.Advance(time.Hour)
	rs.resume(clock.Now())
	clock.Advance(2 * time.Second)

	elapsed := rs.elapsedBase + clock.Since(rs.startTime)
	if elapsed != 12*time.Second {
		t.Errorf("elapsed = %v after resume, want 12s", elapsed)
	}
}

// receiveEvent reads the next event or fails the test after a timeout.
func receiveEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}

		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	return Event{}
}

func TestEngineEmitsOncePerElapsedSecond(t *testing.T) {
	clock := clockwork.NewFakeClock()

	eng, err := New(Settings{
		Interval: 2 * time.Second,
		Total:    4 * time.Second,
	}, clock)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go eng.Run(ctx)

	// Initial snapshot.
	ev := receiveEvent(t, eng.Events())
	if ev.Kind != EventStateChange || ev.State.Status != StatusIdle {
		t.Fatalf("initial event = %v/%v, want state change while idle", ev.Kind, ev.State.Status)
	}

	eng.Start()

	ev = receiveEvent(t, eng.Events())
	if ev.State.Status != StatusRunning {
		t.Fatalf("status after Start = %v, want %v", ev.State.Status, StatusRunning)
	}

	clock.BlockUntil(1)

	// A single late wake must yield every missed transition in order: this is
	// what keeps the countdown correct across process suspension.
	clock.Advance(4 * time.Second)

	want := []EventKind{
		EventWarn,
		EventIntervalEnd,
		EventWarn,
		EventSessionEnd,
	}

	var got []EventKind
	for range want {
		got = append(got, receiveEvent(t, eng.Events()).Kind)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("catch-up sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineReset(t *testing.T) {
	clock := clockwork.NewFakeClock()

	settings := Settings{
		Interval: 2 * time.Second,
		Total:    10 * time.Second,
	}

	eng, err := New(settings, clock)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go eng.Run(ctx)

	receiveEvent(t, eng.Events()) // initial snapshot

	eng.Start()
	receiveEvent(t, eng.Events())

	clock.BlockUntil(1)
	clock.Advance(3 * time.Second)

	for i := 0; i < 3; i++ {
		receiveEvent(t, eng.Events())
	}

	eng.Reset()

	ev := receiveEvent(t, eng.Events())
	if ev.Kind != EventStateChange {
		t.Fatalf("event after Reset = %v, want %v", ev.Kind, EventStateChange)
	}

	want := State{
		Status:            StatusIdle,
		IntervalRemaining: settings.Interval,
		TotalRemaining:    settings.Total,
	}

	if diff := cmp.Diff(want, ev.State); diff != "" {
		t.Errorf("state after Reset mismatch (-want +got):\n%s", diff)
	}
}
