// Package dispatch maps a captured argument list to one of three fixed
// outcomes. It never reads process state: callers pass the arguments in.
package dispatch

import (
	"fmt"
	"io"
)

// Flag is a recognized command-line token.
type Flag int

const (
	// FlagHelp matches --help.
	FlagHelp Flag = iota
	// FlagVersion matches --version.
	FlagVersion
)

// Token returns the literal token matched against the argument list, or ""
// for a value outside the declared constants.
func (f Flag) Token() string {
	switch f {
	case FlagHelp:
		return "--help"
	case FlagVersion:
		return "--version"
	}
	return ""
}

// Outcome is the result of classifying an argument list.
type Outcome int

const (
	// OutcomeUnknown is the default when no recognized flag is present.
	OutcomeUnknown Outcome = iota
	OutcomeHelp
	OutcomeVersion
)

// Message returns the single line printed for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeHelp:
		return "Help information"
	case OutcomeVersion:
		return "Version information"
	}
	return "Unknown command"
}

// precedence lists flags in priority order; first match wins.
var precedence = []struct {
	flag    Flag
	outcome Outcome
}{
	{FlagHelp, OutcomeHelp},
	{FlagVersion, OutcomeVersion},
}

// Contains reports whether the exact token for f appears anywhere in args.
// An undeclared Flag never matches.
func Contains(args []string, f Flag) bool {
	tok := f.Token()
	if tok == "" {
		return false
	}
	for _, a := range args {
		if a == tok {
			return true
		}
	}
	return false
}

// Classify picks the outcome for args. Unrecognized tokens fall through to
// OutcomeUnknown.
func Classify(args []string) Outcome {
	for _, p := range precedence {
		if Contains(args, p.flag) {
			return p.outcome
		}
	}
	return OutcomeUnknown
}

// FormatArgs renders the diagnostic line listing every argument in order.
func FormatArgs(args []string) string {
	if args == nil {
		args = []string{}
	}
	return fmt.Sprintf("Command line arguments: %q", args)
}

// Run writes the diagnostic line followed by the outcome message.
// Only write errors are returned.
func Run(w io.Writer, args []string) error {
	if _, err := fmt.Fprintln(w, FormatArgs(args)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Classify(args).Message())
	return err
}
