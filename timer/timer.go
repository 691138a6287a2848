// Package timer operates the interval countdown display and its sound and
// notification side effects.
package timer

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/dbalogun/pulse/config"
	"github.com/dbalogun/pulse/countdown"
	"github.com/dbalogun/pulse/internal/audio"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	sound      key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "play/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	sound: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sound"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Timer is the bubbletea model for a countdown session. All countdown state
// lives in the engine goroutine; the model only holds the latest snapshot it
// received.
type Timer struct {
	Opts *config.TimerConfig

	engine *countdown.Engine
	cancel context.CancelFunc
	sound  *audio.Service

	state    countdown.State
	progress progress.Model
	help     help.Model

	soundOptions       []string
	selectedSoundIndex int
	showingSoundMenu   bool

	debug bool
}

// engineClosedMsg is delivered when the engine goroutine exits.
type engineClosedMsg struct{}

// New creates a timer for the configured session.
func New(opts *config.TimerConfig) (*Timer, error) {
	settings := countdown.Settings{
		Interval: opts.Interval,
		Total:    opts.SessionTime,
		Warmup:   opts.Warmup,
	}

	engine, err := countdown.New(settings, clockwork.NewRealClock())
	if err != nil {
		return nil, err
	}

	sound := audio.NewService(nil, float64(opts.Volume)/100)

	if opts.AmbientSound != "" {
		if err := sound.SetAmbient(opts.AmbientSound); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	t := &Timer{
		Opts:     opts,
		engine:   engine,
		cancel:   cancel,
		sound:    sound,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		debug:    os.Getenv("PULSE_DEBUG") != "",
	}

	go engine.Run(ctx)

	return t, nil
}

// Init starts the countdown as soon as the program is on screen.
func (t *Timer) Init() tea.Cmd {
	t.sound.StartKeepAlive()
	t.sound.StartAmbient()
	t.engine.Start()

	return t.nextEvent
}

// nextEvent blocks until the engine delivers the next state event.
func (t *Timer) nextEvent() tea.Msg {
	ev, ok := <-t.engine.Events()
	if !ok {
		return engineClosedMsg{}
	}

	return ev
}

// shutdown releases the engine, the audio device, and the status file.
func (t *Timer) shutdown() {
	t.engine.Stop()
	t.cancel()
	t.sound.Close()

	_ = os.Remove(config.StatusFilePath())
}
