package config

import (
	"io/fs"
	"os"
)

// Separator ends mode parsing: everything after it is a file path.
const Separator = "--"

type StatFunc func(name string) (fs.FileInfo, error)

// Resolve turns the positional arguments into a validated Config.
//
// One argument is ambiguous: it is a file path if something exists at that
// path, otherwise it is a mode flag applied to standard input. Two arguments
// are always MODE PATH.
func Resolve(args []string, stat StatFunc) (Config, error) {
	if stat == nil {
		stat = os.Stat
	}
	args = dropSeparator(args)
	var cfg Config
	switch len(args) {
	case 1:
		if _, err := stat(args[0]); err == nil {
			return Config{Mode: ModeAll, Source: Source{Path: args[0]}}, nil
		}
		m, err := ParseMode(args[0])
		if err != nil {
			return cfg, err
		}
		return Config{Mode: m}, nil
	case 2:
		if args[0] == Separator {
			return Config{Mode: ModeAll, Source: Source{Path: args[1]}}, nil
		}
		m, err := ParseMode(args[0])
		if err != nil {
			return cfg, err
		}
		return Config{Mode: m, Source: Source{Path: args[1]}}, nil
	default:
		return cfg, &UsageErr{Args: len(args)}
	}
}

// dropSeparator rewrites MODE -- PATH to MODE PATH. A leading "--" is kept so
// the two-argument case can tell "-- PATH" apart from "MODE PATH".
func dropSeparator(args []string) []string {
	if len(args) == 3 && args[1] == Separator {
		return []string{args[0], args[2]}
	}
	return args
}
