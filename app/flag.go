package app

import "github.com/urfave/cli/v2"

var (
	intervalFlag = &cli.StringFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "Interval length in seconds (default: 30). Also accepts Go duration strings, e.g. '45s' or '1m30s'",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Total session length in minutes (default: 20). Also accepts Go duration strings, e.g. '25m' or '1h'",
	}

	warmupFlag = &cli.StringFlag{
		Name:  "warmup",
		Usage: "Warmup lead-in before the first interval (default: 10s). Set to 0 to start immediately",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play an ambient sound continuously during the session. Default options: white_noise, brown_noise.\n\t\t\t\tDisable sound by setting to 'off'",
	}

	volumeFlag = &cli.UintFlag{
		Name:  "volume",
		Usage: "Sound volume from 0 to 100 (default: 100)",
	}

	themeFlag = &cli.StringFlag{
		Name:  "theme",
		Usage: "Color theme: ember, ocean, forest, or classic",
	}

	intervalCmdFlag = &cli.StringFlag{
		Name:    "interval-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command at the end of each interval",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears when the session completes",
	}

	disableCoachFlag = &cli.BoolFlag{
		Name:  "disable-coach",
		Usage: "Disable the countdown blips in the final seconds of each interval",
	}

	disableBellFlag = &cli.BoolFlag{
		Name:  "disable-bell",
		Usage: "Disable the terminal bell on interval boundaries",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
