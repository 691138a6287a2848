// Package timeutil provides utility functions for working with time values.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)
	mins = total / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// Format renders a duration as "MM:SS". Durations of an hour or more gain an
// hour component.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	mins, secs := SecsToMinsAndSecs(d.Seconds())

	hrs := mins / secondsInAMinute
	mins %= secondsInAMinute

	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}

	return fmt.Sprintf("%02d:%02d", mins, secs)
}
