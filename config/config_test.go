package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

func TestMain(m *testing.M) {
	// replace the pulse directory to avoid overriding user configuration
	configDir = "pulse_test"

	_ = os.Setenv("PULSE_ENV", "testing")

	InitializePaths()

	pterm.DisableOutput()

	code := m.Run()

	err := os.RemoveAll(filepath.Dir(configFilePath))
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(code)
}

// newTestContext builds a cli context with the timer flags parsed from args.
func newTestContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("interval", "", "")
	set.String("duration", "", "")
	set.String("warmup", "", "")
	set.String("sound", "", "")
	set.String("theme", "", "")
	set.String("interval-cmd", "", "")
	set.Uint("volume", 0, "")
	set.Bool("disable-notification", false, "")
	set.Bool("disable-coach", false, "")
	set.Bool("disable-bell", false, "")

	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}

	return cli.NewContext(nil, set, nil)
}

// resetConfig clears all shared configuration state between test cases.
func resetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()

	timerCfg = &TimerConfig{}

	if err := initTimerConfig(); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	resetConfig(t)

	setTimerConfig(newTestContext(t))

	want := &TimerConfig{
		Interval:    30 * time.Second,
		SessionTime: 20 * time.Minute,
		Warmup:      10 * time.Second,
		Volume:      100,
		Theme:       "ember",
		Coach:       true,
		Bell:        true,
		Notify:      true,
		DarkTheme:   true,
	}

	ignored := cmpopts.IgnoreFields(
		TimerConfig{},
		"Stderr", "Stdout", "Stdin", "Style", "PathToConfig",
	)

	if diff := cmp.Diff(want, timerCfg, ignored); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestCliOverrides(t *testing.T) {
	resetConfig(t)

	setTimerConfig(newTestContext(t,
		"-interval", "45",
		"-duration", "15m",
		"-warmup", "0s",
		"-sound", "brown_noise",
		"-theme", "ocean",
		"-disable-coach",
		"-volume", "60",
	))

	if timerCfg.Interval != 45*time.Second {
		t.Errorf("interval = %v, want 45s", timerCfg.Interval)
	}

	if timerCfg.SessionTime != 15*time.Minute {
		t.Errorf("session time = %v, want 15m", timerCfg.SessionTime)
	}

	if timerCfg.Coach {
		t.Error("coach cues still enabled after -disable-coach")
	}

	if timerCfg.AmbientSound != "brown_noise" {
		t.Errorf("ambient sound = %q, want brown_noise", timerCfg.AmbientSound)
	}

	if timerCfg.Theme != "ocean" {
		t.Errorf("theme = %q, want ocean", timerCfg.Theme)
	}

	if timerCfg.Volume != 60 {
		t.Errorf("volume = %d, want 60", timerCfg.Volume)
	}
}

func TestSoundOffOverride(t *testing.T) {
	resetConfig(t)

	viper.Set(configAmbientSound, "white_noise")

	setTimerConfig(newTestContext(t, "-sound", "off"))

	if timerCfg.AmbientSound != "" {
		t.Errorf("ambient sound = %q after -sound off, want empty", timerCfg.AmbientSound)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in      string
		unit    string
		want    time.Duration
		wantErr bool
	}{
		{in: "45", unit: "s", want: 45 * time.Second},
		{in: "90s", unit: "s", want: 90 * time.Second},
		{in: "1m30s", unit: "s", want: 90 * time.Second},
		{in: "20", unit: "m", want: 20 * time.Minute},
		{in: "0", unit: "s", want: 0},
		{in: "-5", unit: "s", wantErr: true},
		{in: "soon", unit: "s", wantErr: true},
	}

	for _, tc := range cases {
		got, err := parseDuration(tc.in, tc.unit)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseDuration(%q, %q) error = %v, wantErr %t", tc.in, tc.unit, err, tc.wantErr)
			continue
		}

		if got != tc.want {
			t.Errorf("parseDuration(%q, %q) = %v, want %v", tc.in, tc.unit, got, tc.want)
		}
	}
}

func TestNewStyleUnknownThemeFallsBack(t *testing.T) {
	got := NewStyle("no-such-theme")
	want := NewStyle(defaultTheme)

	if got.Main.GetForeground() != want.Main.GetForeground() {
		t.Error("unknown theme did not fall back to the default palette")
	}
}
