package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/grahms/activestep"
	"github.com/grahms/activestep/internal/cli"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by run to a process exit code.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// run loads every file named on the command line and prints its steps.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := activestep.ContextWithLogger(context.Background(), logger)

	codec := activestep.NewCodec(activestep.NewDefaultVocabulary(),
		activestep.WithEncodePolicy(cfg.Policy),
		activestep.WithLogger(logger))
	loader := activestep.NewStepLoader(codec)

	for _, path := range cfg.Paths {
		steps, err := loader.LoadFile(ctx, path)
		if err != nil {
			return err
		}
		for _, step := range steps {
			names := codec.EncodeNames(step.Commands)
			fmt.Fprintf(outW, "%s\t%s\t%s\n", step.Identifier, step.Commands, strings.Join(names, ","))
		}
		logger.Info("Processed step file.", "path", path, "steps", len(steps))
	}
	return nil
}

// newLogger creates a slog.Logger for the given level and format.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
