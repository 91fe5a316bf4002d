// Package cli parses the stepcmd command line.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/grahms/activestep"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the parsed command line.
type Config struct {
	Paths     []string
	Policy    activestep.EncodePolicy
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the parsed Config, a
// boolean indicating the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("stepcmd", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stepcmd - inspect the commands of active step definitions.

Usage:
  stepcmd [options] FILE...

Arguments:
  FILE
    Step definition file (.json, .yaml, .yml or .hcl).

Options:
`)
		flagSet.PrintDefaults()
	}

	policyFlag := flagSet.String("policy", "subsumed", "Which names to print. Options: 'subsumed' or 'specific'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	policy, err := activestep.ParseEncodePolicy(strings.ToLower(*policyFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		Paths:     flagSet.Args(),
		Policy:    policy,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}
