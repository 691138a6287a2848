package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/dbalogun/pulse/countdown"
	"github.com/dbalogun/pulse/internal/audio"
	"github.com/dbalogun/pulse/internal/static"
)

// handleEvent applies a countdown event to the model and triggers its side
// effects. The engine already decided what happened; this only reacts.
func (t *Timer) handleEvent(ev countdown.Event) (tea.Model, tea.Cmd) {
	t.state = ev.State

	switch ev.Kind {
	case countdown.EventWarn:
		if t.Opts.Coach {
			t.sound.PlayCue(audio.CueTick)
		}

	case countdown.EventWarmupEnd:
		t.sound.PlayCue(audio.CueIntervalEnd)
		t.ringBell()

	case countdown.EventIntervalEnd:
		t.sound.PlayCue(audio.CueIntervalEnd)
		t.ringBell()

		go t.runIntervalCmd()

	case countdown.EventSessionEnd:
		t.sound.PlayCue(audio.CueSessionEnd)
		t.ringBell()
		t.sound.PauseAmbient()
		t.sound.StopKeepAlive()

		go t.notify("Session complete", "Your interval session is done. Nice work!")

	case countdown.EventStateChange:
		t.syncAudioToStatus()
	}

	_ = t.writeStatusFile()

	var cmd tea.Cmd
	if ev.Kind != countdown.EventSessionEnd {
		cmd = t.progress.SetPercent(t.intervalProgress())
	}

	return t, tea.Batch(cmd, t.nextEvent)
}

// syncAudioToStatus pauses the speaker alongside the countdown so ambient
// sound and the keep-alive stream do not outlive a paused timer.
func (t *Timer) syncAudioToStatus() {
	switch t.state.Status {
	case countdown.StatusPaused:
		t.sound.Suspend()
	case countdown.StatusRunning:
		t.sound.Resume()
		t.sound.StartAmbient()
	}
}

func (t *Timer) handleSoundMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if t.selectedSoundIndex > 0 {
			t.selectedSoundIndex--
		}
	case "down", "j":
		if t.selectedSoundIndex < len(t.soundOptions)-1 {
			t.selectedSoundIndex++
		}
	case "enter":
		selected := t.soundOptions[t.selectedSoundIndex]
		if selected == "off" {
			selected = ""
		}

		t.Opts.AmbientSound = selected
		t.showingSoundMenu = false

		if err := t.sound.SetAmbient(selected); err != nil {
			slog.Error("failed to switch ambient sound",
				slog.String("sound", selected),
				slog.Any("error", err),
			)
		}
	case "esc":
		t.showingSoundMenu = false
	case "ctrl+c":
		t.shutdown()
		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.debug {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case countdown.Event:
		return t.handleEvent(msg)

	case engineClosedMsg:
		return t, nil

	case tea.KeyMsg:
		if t.showingSoundMenu {
			return t.handleSoundMenuKey(msg)
		}

		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			if t.state.Status != countdown.StatusCompleted {
				t.engine.Toggle()
			}

			return t, nil

		case key.Matches(msg, defaultKeymap.reset):
			t.engine.Reset()
			t.engine.Start()
			t.sound.StartKeepAlive()
			t.sound.StartAmbient()

			return t, nil

		case key.Matches(msg, defaultKeymap.sound):
			if t.state.Status == countdown.StatusCompleted {
				return t, nil
			}

			t.soundOptions = static.SoundOpts()
			t.selectedSoundIndex = 0
			t.showingSoundMenu = true

			current := t.Opts.AmbientSound
			if current == "" {
				current = "off"
			}

			for i, opt := range t.soundOptions {
				if opt == current {
					t.selectedSoundIndex = i
					break
				}
			}

			return t, nil

		case key.Matches(msg, defaultKeymap.quit):
			t.shutdown()

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}

// intervalProgress reports how far the current interval has advanced.
func (t *Timer) intervalProgress() float64 {
	if t.Opts.Interval <= 0 {
		return 0
	}

	done := t.Opts.Interval - t.state.IntervalRemaining

	return float64(done) / float64(t.Opts.Interval)
}
