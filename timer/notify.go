package timer

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/dbalogun/pulse/config"
)

// notify sends a desktop notification if notifications are enabled.
func (t *Timer) notify(title, msg string) {
	if !t.Opts.Notify {
		return
	}

	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(config.Dir(), "static", "icon.png"),
	)

	err := beeep.Notify(title, msg, pathToIcon)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// ringBell sounds the terminal bell. It is the fallback cue for terminals
// without a working audio device.
func (t *Timer) ringBell() {
	if !t.Opts.Bell {
		return
	}

	_, _ = os.Stdout.WriteString("\a")
}

// runIntervalCmd executes the configured hook command on interval
// boundaries.
func (t *Timer) runIntervalCmd() {
	intervalCmd := t.Opts.IntervalCmd
	if intervalCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(intervalCmd)
	if err != nil {
		slog.Error("unable to parse interval_cmd option", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("PULSE_INTERVAL=%d", t.state.IntervalsCompleted),
	)

	if err := cmd.Run(); err != nil {
		slog.Error("interval_cmd failed", slog.Any("error", err))
	}
}
