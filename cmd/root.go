package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ccwc/internal/app"
	"ccwc/internal/config"
	"ccwc/internal/observability"
	"github.com/spf13/cobra"
)

type shellFlags struct {
	Help        bool
	ShowVersion bool
	LogLevel    slog.Level
}

func Execute() int {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	root := NewRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			if ee.Msg != "" {
				fmt.Fprintln(stderr, ee.Msg)
			}
			return ee.Code
		}
		fmt.Fprintln(stderr, err.Error())
		return ExitInternal
	}
	return ExitOK
}

// NewRootCmd builds the ccwc command. Flag parsing is left off because the
// mode tokens are positional and "-x" has to reach the resolver unchanged.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:                "ccwc [-c|-l|-w|-m] [file_path]",
		Short:              "Count bytes, lines, words or characters",
		Long:               rootLongHelp(),
		Example:            rootExampleHelp(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rest, flags, err := normalizeArgs(args)
			if err != nil {
				return &ExitError{Code: ExitArg, Msg: err.Error()}
			}
			if flags.Help {
				printHelp(stdout, cmd.Use)
				return nil
			}
			if flags.ShowVersion {
				printVersion(stdout)
				return nil
			}
			logger := observability.NewLogger(stderr, "ccwc", flags.LogLevel)
			return runCount(stdin, stdout, logger, rest)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

func runCount(stdin io.Reader, stdout io.Writer, logger observability.Logger, args []string) error {
	cfg, err := config.Resolve(args, os.Stat)
	if err != nil {
		logger.Debug("resolve failed", "args", args, "err", err)
		return toExitError(err)
	}
	logger.Debug("resolved", "mode", string(cfg.Mode), "path", cfg.Source.Path, "stdin", cfg.Source.IsStdin())
	_, err = app.Run(app.Options{
		Config: cfg,
		Stdin:  stdin,
		Stdout: stdout,
		Logger: logger,
	})
	if err != nil {
		return toExitError(err)
	}
	return nil
}

func toExitError(err error) *ExitError {
	var (
		ue *config.UsageErr
		me *config.ModeErr
		ie *app.InputErr
	)
	switch {
	case errors.As(err, &ue), errors.As(err, &me):
		return &ExitError{Code: ExitArg, Msg: err.Error()}
	case errors.As(err, &ie):
		return &ExitError{Code: ExitInput, Msg: err.Error()}
	default:
		return &ExitError{Code: ExitInternal, Msg: err.Error()}
	}
}

// normalizeArgs pulls the shell's own options out of args. Scanning stops at
// the "--" separator, which is left in place for the resolver.
func normalizeArgs(args []string) ([]string, shellFlags, error) {
	flags := shellFlags{LogLevel: slog.LevelWarn}
	level := observability.DefaultLevel
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == config.Separator {
			rest = append(rest, args[i:]...)
			break
		}
		if a == "--log-level" {
			if i+1 >= len(args) {
				return nil, flags, fmt.Errorf("--log-level needs a value")
			}
			level = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(a, "--log-level=") {
			level = strings.TrimPrefix(a, "--log-level=")
			continue
		}
		rest = append(rest, a)
	}
	lvl, err := observability.ParseLevel(level)
	if err != nil {
		return nil, flags, err
	}
	flags.LogLevel = lvl
	if len(rest) == 1 {
		switch rest[0] {
		case "--help":
			flags.Help = true
		case "--version":
			flags.ShowVersion = true
		}
	}
	return rest, flags, nil
}
