package app

import (
	"io"
	"os"

	"ccwc/internal/count"
	"ccwc/internal/output"
)

func Run(opts Options) (Result, error) {
	res := Result{Config: opts.Config}
	src := opts.Config.Source
	log := opts.Logger

	var in io.Reader = opts.Stdin
	if src.IsStdin() {
		if in == nil {
			in = os.Stdin
		}
		log.Debug("reading standard input", "mode", string(opts.Config.Mode))
	} else {
		f, err := os.Open(src.Path)
		if err != nil {
			log.Debug("open failed", "path", src.Path, "err", err)
			return res, &InputErr{Path: src.Path, Err: err}
		}
		defer f.Close()
		in = f
		log.Debug("reading file", "path", src.Path, "mode", string(opts.Config.Mode))
	}

	counts, err := count.Count(in)
	if err != nil {
		log.Debug("read failed", "path", src.Path, "err", err)
		return res, &InputErr{Path: src.Path, Err: err}
	}
	res.Counts = counts
	log.Debug("counted",
		"bytes", counts.Bytes,
		"lines", counts.Lines,
		"words", counts.Words,
		"chars", counts.Chars,
	)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if err := output.Write(stdout, opts.Config.Mode, counts, src); err != nil {
		return res, &OutputErr{Err: err}
	}
	return res, nil
}
