// Package app assembles the command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/dbalogun/pulse/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pulse app instance.
func Get() *cli.App {
	pulseApp := &cli.App{
		Name: "pulse",
		Authors: []*cli.Author{
			{
				Name:  "Damilola Balogun",
				Email: "dami@dbalogun.dev",
			},
		},
		Usage: `
		Pulse is an interval timer for the command-line. It counts down a fixed
		interval on repeat until the session ends, with audio cues on each
		boundary, so you can keep your eyes off the clock during workouts,
		practice drills, or timeboxed work.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			intervalFlag,
			durationFlag,
			warmupFlag,
			soundFlag,
			volumeFlag,
			themeFlag,
			intervalCmdFlag,
			disableNotificationFlag,
			disableCoachFlag,
			disableBellFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pulseApp
}
