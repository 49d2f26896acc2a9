package options

import (
	"fmt"
	"os"
	"sllist/util"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

const DEFAULT_WORKERS = 4

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "values",
		Aliases:  []string{"l"},
		Value:    "",
		Usage:    "inline values to push, comma delimited, in push order",
		Required: false,
	},
	&cli.StringSliceFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "path to a file holding one value per line, in push order, may be repeated",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "include",
		Value:    "",
		Usage:    "patterns of values to include, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of values to exclude, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking values against patterns",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "pop",
		Aliases:  []string{"p"},
		Value:    0,
		Usage:    "number of values to pop from the front of each list before printing it",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "stats-output",
		Value:    "",
		Usage:    "write run statistics as json to this path",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    DEFAULT_WORKERS,
		Usage:    "number of sources loaded concurrently",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

type Options struct {
	InlineValues       []string
	InputPaths         []string
	IncludePatterns    []string
	ExcludePatterns    []string
	IgnoreCasePatterns bool
	PopCount           int
	StatsOutputPath    string
	Workers            int
	VerboseLogging     bool
}

// HasInlineValues is true when --values was given, even if it held no values.
func (opts *Options) HasInlineValues() bool {
	return opts.InlineValues != nil
}

func SplitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	trimmed := lo.Map(strings.Split(flag, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Compact(trimmed)
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist at %v", filePath)
	}
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file at %v", filePath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		InputPaths:         lo.Compact(c.StringSlice("input")),
		IncludePatterns:    SplitListFlag(c.String("include")),
		ExcludePatterns:    SplitListFlag(c.String("exclude")),
		IgnoreCasePatterns: c.Bool("ignore-case"),
		PopCount:           c.Int("pop"),
		StatsOutputPath:    c.String("stats-output"),
		Workers:            c.Int("workers"),
		VerboseLogging:     c.Bool("verbose"),
	}
	if c.IsSet("values") {
		opts.InlineValues = SplitListFlag(c.String("values"))
	}

	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func (opts *Options) Validate() error {
	if !opts.HasInlineValues() && len(opts.InputPaths) == 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_SOURCES,
			InternalError: fmt.Errorf("no values given, use --values or --input"),
		}
	}

	for _, inputPath := range opts.InputPaths {
		err := validateFile(inputPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_INPUT_PATH,
				InternalError: fmt.Errorf("input at '%v' is missing or invalid: %v", inputPath, err),
			}
		}
	}

	if opts.PopCount < 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_POP_COUNT,
			InternalError: fmt.Errorf("pop count must not be negative, got %v", opts.PopCount),
		}
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return nil
}
