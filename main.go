package main

import (
	"errors"
	"fmt"
	"os"
	"sllist/options"
	"sllist/runner"
	"sllist/util"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   sllist - 1.0.0 - Build singly linked lists from value sequences and print them head first.

USAGE:
   sllist [--values value] [--input value ...]        [optional flags]

OPTIONS:
   --values value, -l value   inline values to push, comma delimited, in push order
   --input value, -i value    path to a file holding one value per line, in push order, may be repeated
   --include value            patterns of values to include, comma delimited, may contain any glob pattern
   --exclude value, -e value  patterns of values to exclude, comma delimited, may contain any glob pattern
   --ignore-case              ignore case when checking values against patterns (default: false)
   --pop value, -p value      number of values to pop from the front of each list before printing it (default: 0)
   --stats-output value       write run statistics as json to this path
   --workers value            number of sources loaded concurrently (default: 4)
   --verbose, --vv            verbose logging (default: false)
   --help, -h                 show help (default: false)
   --version, -v              print the version (default: false)

EXIT CODES:
  0    Success
  201  Input path is invalid
  202  Input could not be decoded
  203  Value pattern is invalid
  204  Popped more values than a list holds
  205  Pop count is invalid
  206  No values given
  1    Any other error
`

	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	app := &cli.App{
		Name:    "sllist",
		Usage:   "Build singly linked lists from value sequences and print them head first.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			if opts.VerboseLogging {
				logrus.SetLevel(logrus.DebugLevel)
			}

			results, runStats, err := runner.Run(opts)
			if err != nil {
				return err
			}
			for _, result := range results {
				fmt.Fprintf(ctx.App.Writer, "%v: [%v]\n", result.Name, strings.Join(result.Remaining, " "))
			}

			if opts.StatsOutputPath != "" {
				err = runStats.WriteFile(opts.StatsOutputPath)
				if err != nil {
					return err
				}
				logrus.Infof("written stats to '%v'", opts.StatsOutputPath)
			}
			logrus.Debugf("completed %v lists", len(results))
			return nil
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Errorf("failed: %v", err)
		var errorWithCode *util.ErrorWithCode
		if errors.As(err, &errorWithCode) {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
