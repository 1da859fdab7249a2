// Command curve prints the minimum length of a horizontal road curve, in metres
// and in simulation grid units, for the given positional arguments:
//
//	curve [angleDegrees] [designSpeedKmph] [sideFrictionFactor] [superelevationRate]
//
// Omitted trailing arguments take their defaults (55, 100, 0.14, 0).
package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/cxd309/curve-engine/internal/engine"
)

func main() {
	// Diagnostics go to stderr; stdout carries only the record.
	logger := newLogger(os.Stderr)
	slog.SetDefault(logger)

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		os.Exit(fail(logger, err))
	}
}

// run parses args, calculates the curve and writes the record to outW.
func run(outW io.Writer, args []string) error {
	input, err := engine.ParseArgs(args)
	if err != nil {
		return err
	}

	result, err := engine.Calculate(input)
	if err != nil {
		return err
	}

	return result.WriteRecord(outW)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// fail logs err, with the offending field when there is one, and returns the exit code.
func fail(logger *slog.Logger, err error) int {
	attrs := []any{"err", err}
	var fe *engine.FieldError
	if errors.As(err, &fe) {
		attrs = append(attrs, "field", fe.Field)
	}
	logger.Error("calculation failed", attrs...)
	return 1
}
