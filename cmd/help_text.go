package cmd

import (
	"fmt"
	"io"
	"strings"
)

func rootLongHelp() string {
	return strings.TrimSpace(`
Count bytes, lines, words or characters of a file or of standard input.

Modes (at most one, given before the file):
  -c   bytes
  -l   lines (line-feed bytes; a lone carriage return does not end a line)
  -w   words (a word is only counted once whitespace follows it)
  -m   characters (UTF-8; invalid bytes count as replacement characters)
  none lines, words and bytes, followed by the file name

A single argument is a file when something exists at that path, otherwise it
is read as a mode and the input is standard input. Use "--" to force the
next argument to be a file.

Shell options:
  --help               show this help
  --version            show version information
  --log-level LEVEL    diagnostics on stderr: debug, info, warn (default), error

Exit codes:
  0  success
  1  usage error or invalid mode
  3  the input could not be opened or read
  5  the result could not be written
`)
}

func rootExampleHelp() string {
	return strings.TrimSpace(`
  # lines, words and bytes of a file
  ccwc notes.txt

  # only the line count
  ccwc -l notes.txt

  # words from a pipe
  cat notes.txt | ccwc -w

  # a file whose name looks like a mode
  ccwc -c -- -w
`)
}

func printHelp(w io.Writer, usage string) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n\nExamples:\n%s\n", rootLongHelp(), usage, rootExampleHelp())
}
