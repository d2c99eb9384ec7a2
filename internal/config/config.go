package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/linelist/internal/report"
)

var (
	ErrHelp               = errors.New("help requested")
	ErrNegativeLimit      = errors.New("--limit must not be negative")
	ErrNegativeSkip       = errors.New("--skip must not be negative")
	ErrInvalidFormat      = errors.New("--format must be one of: text, json, yaml")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// Config defines CLI options for the line listing command.
type Config struct {
	Limit  int
	Skip   int
	Format report.Format
	Debug  bool
}

// Parse parses and validates CLI arguments. An empty or program-name-only
// argument list yields the default configuration.
func Parse(args []string) (*Config, error) {
	name := "linelist"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var limit int
	fs.IntVar(&limit, "limit", 0, "Print at most N entries (0 prints all)")
	fs.IntVar(&limit, "n", 0, "Shorthand for --limit")
	skip := fs.Int("skip", 0, "Skip the first N entries")
	format := fs.String("format", "text", "Output format: text, json or yaml")
	debug := fs.Bool("debug", false, "Write debug logs to stderr")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgument, fs.Arg(0))
	}
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if *skip < 0 {
		return nil, ErrNegativeSkip
	}

	parsedFormat, err := parseFormat(*format)
	if err != nil {
		return nil, err
	}

	return &Config{
		Limit:  limit,
		Skip:   *skip,
		Format: parsedFormat,
		Debug:  *debug,
	}, nil
}

func parseFormat(input string) (report.Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", string(report.FormatText):
		return report.FormatText, nil
	case string(report.FormatJSON):
		return report.FormatJSON, nil
	case string(report.FormatYAML):
		return report.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidFormat, input)
	}
}

// Usage returns command usage text.
func Usage() string {
	return `linelist - print the non-blank lines of input.txt, numbered from 1

Usage:
  linelist [-n N] [--skip N] [--format text|json|yaml] [--debug]

Options:
  -n, --limit N     Print at most N entries (default: all)
  --skip N          Skip the first N entries
  --format FORMAT   Output format: text, json or yaml (default: text)
  --debug           Write debug logs to stderr
  -h, --help        Show this help message

The input is always input.txt in the current directory.`
}
