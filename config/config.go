// Package config is responsible for setting the program config from the
// config file and command-line arguments.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// TimerConfig represents the program configuration derived from the config
// file and command-line arguments.
type TimerConfig struct {
	Stderr              io.Writer     `json:"-"`
	Stdout              io.Writer     `json:"-"`
	Stdin               io.Reader     `json:"-"`
	Style               *Style        `json:"-"`
	PathToConfig        string        `json:"path_to_config"`
	Theme               string        `json:"theme"`
	AmbientSound        string        `json:"sound"`
	IntervalCmd         string        `json:"interval_cmd"`
	Interval            time.Duration `json:"interval"`
	SessionTime         time.Duration `json:"session_time"`
	Warmup              time.Duration `json:"warmup"`
	Volume              int           `json:"volume"`
	Coach               bool          `json:"coach"`
	Bell                bool          `json:"bell"`
	Notify              bool          `json:"notify"`
	DarkTheme           bool          `json:"dark_theme"`
	TwentyFourHourClock bool          `json:"twenty_four_hour_clock"`
}

var timerCfg = &TimerConfig{}

var once sync.Once

var (
	configDir      = "pulse"
	configFileName = "config.yml"
	statusFileName = "status.json"
	logFileName    = "pulse.log"

	configFilePath string
	statusFilePath string
	logFilePath    string
)

const Version = "v0.3.0"

func init() {
	pulseEnv := strings.TrimSpace(os.Getenv("PULSE_ENV"))
	if pulseEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pulseEnv)
		statusFileName = fmt.Sprintf("status_%s.json", pulseEnv)
		logFileName = fmt.Sprintf("pulse_%s.log", pulseEnv)
	}
}

// Dir is the name of the application directory under the xdg base paths.
func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config, status, and log file locations.
func InitializePaths() {
	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// Timer initializes and returns the timer configuration. Initialization
// happens once no matter how many times it is called.
func Timer(ctx *cli.Context) *TimerConfig {
	once.Do(func() {
		InitializePaths()

		err := initTimerConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setTimerConfig(ctx)

		timerCfg.Style = NewStyle(timerCfg.Theme)
	})

	return timerCfg
}
