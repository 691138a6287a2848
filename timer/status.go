package timer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/dbalogun/pulse/config"
	"github.com/dbalogun/pulse/countdown"
	"github.com/dbalogun/pulse/internal/timeutil"
	"github.com/dbalogun/pulse/internal/ui"
)

// Status is the snapshot written to the status file after every countdown
// event so other processes can inspect the running session.
type Status struct {
	countdown.State

	UpdatedAt time.Time `json:"updated_at"`
}

// writeStatusFile overwrites the status file with the latest countdown
// snapshot.
func (t *Timer) writeStatusFile() error {
	s := Status{
		State:     t.state,
		UpdatedAt: time.Now(),
	}

	statusFilePath := config.StatusFilePath()

	statusFile, err := os.Create(statusFilePath)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = statusFile.Write(b)
	if err != nil {
		return err
	}

	return err
}

// ReportStatus prints the state of the currently running session, if any.
func ReportStatus() error {
	b, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			pterm.Println("No active session")
			return nil
		}

		return err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	if statusIsStale(s, time.Now()) {
		_ = os.Remove(config.StatusFilePath())

		pterm.Println("No active session")

		return nil
	}

	pterm.Println(statusLine(s))

	return nil
}

// statusIsStale reports whether the snapshot belongs to a session that is no
// longer running, e.g. after a crash left the file behind.
func statusIsStale(s Status, now time.Time) bool {
	if s.Status == countdown.StatusCompleted {
		return true
	}

	if s.Status == countdown.StatusRunning && now.After(s.EndTime) {
		return true
	}

	return false
}

func statusLine(s Status) string {
	label := ui.Cyan(fmt.Sprintf("[Interval %d]", s.IntervalsCompleted+1))

	if s.Status == countdown.StatusPaused {
		return fmt.Sprintf(
			"%s paused, %s left in interval",
			label,
			ui.Yellow(timeutil.Format(s.IntervalRemaining)),
		)
	}

	if s.InWarmup() {
		return fmt.Sprintf(
			"Warming up, %s to go",
			ui.Green(timeutil.Format(s.WarmupRemaining)),
		)
	}

	return fmt.Sprintf(
		"%s %s remaining (session: %s left)",
		label,
		ui.Green(timeutil.Format(s.IntervalRemaining)),
		timeutil.Format(s.TotalRemaining),
	)
}
