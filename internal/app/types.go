package app

import (
	"io"

	"ccwc/internal/config"
	"ccwc/internal/count"
	"ccwc/internal/observability"
)

type Options struct {
	Config config.Config
	Stdin  io.Reader
	Stdout io.Writer
	Logger observability.Logger
}

type Result struct {
	Config config.Config
	Counts count.Counts
}

// InputErr is an open or read failure on the byte source.
type InputErr struct {
	Path string
	Err  error
}

func (e *InputErr) Error() string {
	name := e.Path
	if name == "" {
		name = "standard input"
	}
	return name + ": " + e.Err.Error()
}

func (e *InputErr) Unwrap() error { return e.Err }

// OutputErr is a failure writing the report.
type OutputErr struct{ Err error }

func (e *OutputErr) Error() string { return "write output: " + e.Err.Error() }

func (e *OutputErr) Unwrap() error { return e.Err }
