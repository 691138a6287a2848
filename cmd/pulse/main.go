package main

import (
	"os"

	"github.com/dbalogun/pulse/app"
	"github.com/dbalogun/pulse/internal/static"
	"github.com/dbalogun/pulse/report"
)

func init() {
	err := static.CopyFilesToDataDir()
	if err != nil {
		report.Quit(err)
	}
}

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
