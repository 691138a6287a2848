package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/dbalogun/pulse/countdown"
	"github.com/dbalogun/pulse/internal/timeutil"
)

const warnStyleWindow = 3 // seconds left before the interval style changes

func (t *Timer) warmupView() string {
	var s strings.Builder

	s.WriteString(t.Opts.Style.Secondary.SetString("Get ready").String())
	s.WriteString("\n\n")
	s.WriteString(
		t.Opts.Style.Main.SetString(timeutil.Format(t.state.WarmupRemaining)).
			String(),
	)
	s.WriteString(t.helpView())

	return s.String()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(
		t.Opts.Style.Interval.SetString(
			fmt.Sprintf("Interval %d", t.state.IntervalsCompleted+1),
		).String(),
	)

	if t.state.Status == countdown.StatusPaused {
		s.WriteString(t.Opts.Style.Secondary.SetString(" [Paused]").String())
	} else {
		var timeFormat string
		if t.Opts.TwentyFourHourClock {
			timeFormat = "15:04:05"
		} else {
			timeFormat = "03:04:05 PM"
		}

		s.WriteString(
			strings.TrimSpace(
				t.Opts.Style.Hint.SetString(" ends " + t.state.EndTime.Format(timeFormat)).
					String(),
			),
		)
	}

	remaining := t.Opts.Style.Main
	if t.state.IntervalRemaining.Seconds() <= warnStyleWindow {
		remaining = t.Opts.Style.Warn
	}

	s.WriteString("\n\n")
	s.WriteString(
		remaining.SetString(timeutil.Format(t.state.IntervalRemaining)).String(),
	)
	s.WriteString("\n\n")
	s.WriteString(t.progress.View())
	s.WriteString("\n\n")
	s.WriteString(
		t.Opts.Style.Hint.SetString(
			"session: " + timeutil.Format(t.state.TotalRemaining) + " left",
		).String(),
	)
	s.WriteString(t.helpView())

	return s.String()
}

func (t *Timer) completedView() string {
	var s strings.Builder

	s.WriteString(t.Opts.Style.Main.SetString("Session complete").String())
	s.WriteString("\n\n")
	s.WriteString(
		t.Opts.Style.Secondary.SetString(
			fmt.Sprintf("You finished %d intervals. Nice work!",
				t.state.IntervalsCompleted),
		).String(),
	)
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.reset,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) soundMenuView(view string) string {
	var s strings.Builder

	s.WriteString(view)
	s.WriteString("\n\n")
	s.WriteString(t.Opts.Style.Secondary.SetString("Ambient sound").String())
	s.WriteString("\n")

	for i, opt := range t.soundOptions {
		cursor := "  "
		if i == t.selectedSoundIndex {
			cursor = "> "
		}

		line := cursor + opt
		if i == t.selectedSoundIndex {
			line = t.Opts.Style.Interval.SetString(line).String()
		}

		s.WriteString(line + "\n")
	}

	s.WriteString("\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.esc,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) helpView() string {
	return "\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.sound,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	var view string

	switch {
	case t.state.Status == countdown.StatusCompleted:
		view = t.completedView()
	case t.state.InWarmup():
		view = t.warmupView()
	default:
		view = t.timerView()
	}

	if t.showingSoundMenu {
		view = t.soundMenuView(view)
	}

	return t.Opts.Style.Base.Render(view)
}
