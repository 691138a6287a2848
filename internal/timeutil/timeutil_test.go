package timeutil

import (
	"testing"
	"time"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		in   float64
		mins int
		secs int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{61, 1, 1},
		{125.4, 2, 5},
		{125.6, 2, 6},
		{1799, 29, 59},
	}

	for _, tc := range cases {
		mins, secs := SecsToMinsAndSecs(tc.in)
		if mins != tc.mins || secs != tc.secs {
			t.Errorf(
				"SecsToMinsAndSecs(%v) = %d:%d, want %d:%d",
				tc.in,
				mins,
				secs,
				tc.mins,
				tc.secs,
			)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-5 * time.Second, "00:00"},
		{45 * time.Second, "00:45"},
		{90 * time.Second, "01:30"},
		{20 * time.Minute, "20:00"},
		{61 * time.Minute, "1:01:00"},
	}

	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
