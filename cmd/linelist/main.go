package main

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/jacoelho/linelist/internal/config"
	"github.com/jacoelho/linelist/internal/exit"
	"github.com/jacoelho/linelist/internal/lister"
	"github.com/jacoelho/linelist/internal/logging"
	"github.com/jacoelho/linelist/internal/report"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			result := exit.Success(stdout, config.Usage()+"\n")
			result.Print()
			return result.ExitCode
		}

		result := exit.Usage(stderr, err, config.Usage())
		result.Print()
		return result.ExitCode
	}

	logger := logging.New(stderr, cfg.Debug)

	text, err := lister.Load(lister.DefaultFile)
	if err != nil {
		result := exit.Failure(stderr, err)
		result.Print()
		return result.ExitCode
	}
	logger.Debug("input loaded", "path", lister.DefaultFile, "bytes", len(text))

	links := lister.Extract(text)
	logger.Debug("lines extracted", "count", len(links))

	links = lister.Window(links, cfg.Limit, cfg.Skip)
	logger.Debug("window applied", "limit", cfg.Limit, "skip", cfg.Skip, "count", len(links))

	var buf bytes.Buffer
	if err := report.New(lister.DefaultFile, links).Write(&buf, cfg.Format); err != nil {
		result := exit.Failure(stderr, err)
		result.Print()
		return result.ExitCode
	}

	if _, err := buf.WriteTo(stdout); err != nil {
		result := exit.Failure(stderr, err)
		result.Print()
		return result.ExitCode
	}

	return exit.CodeSuccess
}
