package config

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeAll   Mode = "all"
	ModeBytes Mode = "-c"
	ModeLines Mode = "-l"
	ModeWords Mode = "-w"
	ModeChars Mode = "-m"
)

var validModes = []Mode{ModeBytes, ModeLines, ModeWords, ModeChars}

// Source is where the bytes come from. An empty Path means standard input.
type Source struct {
	Path string
}

func (s Source) IsStdin() bool { return s.Path == "" }

// Name is the value printed in the all-counts report; stdin prints as "".
func (s Source) Name() string { return s.Path }

type Config struct {
	Mode   Mode
	Source Source
}

// ParseMode maps a command-line token to a Mode.
func ParseMode(tok string) (Mode, error) {
	for _, m := range validModes {
		if tok == string(m) {
			return m, nil
		}
	}
	return "", &ModeErr{Token: tok}
}

const UsageText = "Usage: ccwc [-c|-l|-w|-m] [file_path]"

type UsageErr struct{ Args int }

func (e *UsageErr) Error() string { return UsageText }

type ModeErr struct{ Token string }

func (e *ModeErr) Error() string {
	allowed := make([]string, 0, len(validModes))
	for _, m := range validModes {
		allowed = append(allowed, string(m))
	}
	return fmt.Sprintf("Invalid option: %s. Expected one of %s or nothing at all", e.Token, strings.Join(allowed, ", "))
}
