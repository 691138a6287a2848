package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const ascii = `
██████╗ ██╗   ██╗██╗     ███████╗███████╗
██╔══██╗██║   ██║██║     ██╔════╝██╔════╝
██████╔╝██║   ██║██║     ███████╗█████╗
██╔═══╝ ██║   ██║██║     ╚════██║██╔══╝
██║     ╚██████╔╝███████╗███████║███████╗
╚═╝      ╚═════╝ ╚══════╝╚══════╝╚══════╝`

const (
	defaultIntervalSecs = 30
	defaultSessionMins  = 20
	defaultWarmupSecs   = 10
	defaultVolume       = 100
	defaultTheme        = "ember"
)

const (
	configIntervalSecs        = "interval_secs"
	configSessionMins         = "session_mins"
	configWarmupSecs          = "warmup_secs"
	configCoach               = "coach"
	configBell                = "bell"
	configNotify              = "notify"
	configAmbientSound        = "sound"
	configVolume              = "volume"
	configTheme               = "theme"
	configDarkTheme           = "dark_theme"
	configTwentyFourHourClock = "24hr_clock"
	configIntervalCmd         = "interval_cmd"
)

func numberPrompt(reader *bufio.Reader, defaultVal int) (int, error) {
	input, err := reader.ReadString('\n')
	if err != nil {
		return 0, errReadingInput
	}

	reader.Reset(os.Stdin)

	input = strings.TrimSpace(strings.TrimSuffix(input, "\n"))
	if input == "" {
		return defaultVal, nil
	}

	num, err := strconv.Atoi(input)
	if err != nil {
		return 0, errExpectedInteger
	}

	if num <= 0 {
		return 0, errExpectedInteger
	}

	return num, nil
}

// prompt allows the user to state their preferred values for the most
// important timer settings. It is run only when a configuration file is not
// already present (e.g. on first run).
func prompt() {
	fmt.Printf("%s\n\n", ascii)

	pterm.Info.Printfln(
		"Your preferences will be saved to: %s\n\n",
		configFilePath,
	)

	_ = pterm.NewBulletListFromString(`Follow the prompts below to configure pulse for the first time.
Type your preferred value, or press ENTER to accept the defaults.
Edit the configuration file (pulse edit-config) to change any settings, or use command line arguments (see the --help flag)`, " ").
		Render()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Press ENTER to continue")

	_, _ = reader.ReadString('\n')

	for {
		if !viper.IsSet(configIntervalSecs) {
			fmt.Printf(
				"\nInterval length in seconds (default: %s): ",
				pterm.Green(defaultIntervalSecs),
			)

			num, err := numberPrompt(reader, defaultIntervalSecs)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}

			viper.Set(configIntervalSecs, num)
		}

		if !viper.IsSet(configSessionMins) {
			fmt.Printf(
				"Session length in minutes (default: %s): ",
				pterm.Green(defaultSessionMins),
			)

			num, err := numberPrompt(reader, defaultSessionMins)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}

			viper.Set(configSessionMins, num)
		}

		break
	}

	if !viper.IsSet(configTheme) {
		theme := defaultTheme

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Color theme").
					Options(huh.NewOptions(Themes()...)...).
					Value(&theme),
			),
		)

		err := form.Run()
		if err != nil {
			theme = defaultTheme
		}

		viper.Set(configTheme, theme)
	}
}

// initTimerConfig initialises the application configuration. If the config
// file does not exist, it prompts the user and saves the inputted
// preferences and defaults in a config file.
func initTimerConfig() error {
	viper.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Dir(configFilePath))

	timerCfg.PathToConfig = configFilePath

	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return createTimerConfig()
		}

		return err
	}

	return nil
}

// createTimerConfig prompts the user to set preferred values for key
// application settings. The results are saved to the user's config
// directory.
func createTimerConfig() error {
	if os.Getenv("PULSE_ENV") != "testing" {
		prompt()
	}

	timerDefaults()

	err := viper.WriteConfigAs(timerCfg.PathToConfig)
	if err != nil {
		return err
	}

	if os.Getenv("PULSE_ENV") != "testing" {
		fmt.Println()
		pterm.Success.Printfln(
			"Your settings have been saved. Thanks for using pulse!\n\n",
		)
	}

	return nil
}

// timerDefaults sets the program's default configuration values.
func timerDefaults() {
	viper.SetDefault(configIntervalSecs, defaultIntervalSecs)
	viper.SetDefault(configSessionMins, defaultSessionMins)
	viper.SetDefault(configWarmupSecs, defaultWarmupSecs)
	viper.SetDefault(configCoach, true)
	viper.SetDefault(configBell, true)
	viper.SetDefault(configNotify, true)
	viper.SetDefault(configAmbientSound, "")
	viper.SetDefault(configVolume, defaultVolume)
	viper.SetDefault(configTheme, defaultTheme)
	viper.SetDefault(configDarkTheme, true)
	viper.SetDefault(configTwentyFourHourClock, false)
	viper.SetDefault(configIntervalCmd, "")
}

// setTimerConfig sets the timer configuration from the config file, then
// overrides it with any command-line arguments.
func setTimerConfig(ctx *cli.Context) {
	timerCfg.Stderr = os.Stderr
	timerCfg.Stdout = os.Stdout
	timerCfg.Stdin = os.Stdin

	timerDefaults()

	timerCfg.Interval = time.Duration(viper.GetInt(configIntervalSecs)) * time.Second
	timerCfg.SessionTime = time.Duration(viper.GetInt(configSessionMins)) * time.Minute
	timerCfg.Warmup = time.Duration(viper.GetInt(configWarmupSecs)) * time.Second
	timerCfg.Coach = viper.GetBool(configCoach)
	timerCfg.Bell = viper.GetBool(configBell)
	timerCfg.Notify = viper.GetBool(configNotify)
	timerCfg.AmbientSound = viper.GetString(configAmbientSound)
	timerCfg.Volume = viper.GetInt(configVolume)
	timerCfg.Theme = viper.GetString(configTheme)
	timerCfg.DarkTheme = viper.GetBool(configDarkTheme)
	timerCfg.TwentyFourHourClock = viper.GetBool(configTwentyFourHourClock)
	timerCfg.IntervalCmd = viper.GetString(configIntervalCmd)

	// command-line arguments override the configuration file
	if v := ctx.String("interval"); v != "" {
		d, err := parseDuration(v, "s")
		if err != nil {
			pterm.Error.Println(errInvalidDuration)
			os.Exit(1)
		}

		timerCfg.Interval = d
	}

	if v := ctx.String("duration"); v != "" {
		d, err := parseDuration(v, "m")
		if err != nil {
			pterm.Error.Println(errInvalidDuration)
			os.Exit(1)
		}

		timerCfg.SessionTime = d
	}

	if v := ctx.String("warmup"); v != "" {
		d, err := parseDuration(v, "s")
		if err != nil {
			pterm.Error.Println(errInvalidDuration)
			os.Exit(1)
		}

		timerCfg.Warmup = d
	}

	if ctx.Bool("disable-notification") {
		timerCfg.Notify = false
	}

	if ctx.Bool("disable-coach") {
		timerCfg.Coach = false
	}

	if ctx.Bool("disable-bell") {
		timerCfg.Bell = false
	}

	if v := ctx.String("sound"); v != "" {
		if v == "off" {
			timerCfg.AmbientSound = ""
		} else {
			timerCfg.AmbientSound = v
		}
	}

	if ctx.IsSet("volume") {
		timerCfg.Volume = int(ctx.Uint("volume"))
		if timerCfg.Volume > 100 {
			timerCfg.Volume = 100
		}
	}

	if v := ctx.String("theme"); v != "" {
		timerCfg.Theme = v
	}

	if v := ctx.String("interval-cmd"); v != "" {
		timerCfg.IntervalCmd = v
	}
}

// parseDuration parses a duration string, treating a bare number as the
// given unit ("s" or "m").
func parseDuration(s, unit string) (time.Duration, error) {
	if _, err := strconv.Atoi(s); err == nil {
		s += unit
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errInvalidDuration.Wrap(err)
	}

	if d < 0 {
		return 0, errInvalidDuration
	}

	return d, nil
}
