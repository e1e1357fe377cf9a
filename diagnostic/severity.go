package diagnostic

import "github.com/nain-lang/go-nain/internal/ansi"

// Severity classifies a diagnostic. Tiers are ordered from most to least
// urgent.
type Severity int

const (
	// CompileTimeError is an error caught while compiling.
	CompileTimeError Severity = iota
	// RuntimeError is an error that escaped compile-time checks.
	RuntimeError
	// WarningHigh flags code that will almost certainly misbehave.
	WarningHigh
	// Warning flags bad practice, deprecated features or slow code.
	Warning
	// WarningLow flags hard-to-read code.
	WarningLow
	// Message is informational: casing, inconsistent whitespace and the like.
	Message
	// DebugMessage is hidden unless verbose output is enabled.
	DebugMessage
	// Spelling reports misspelled words in comments. Hidden unless linting.
	Spelling
)

type tier struct {
	label   string
	visible bool
	style   ansi.Style
}

var tiers = [...]tier{
	CompileTimeError: {"error", true, ansi.BoldRed},
	RuntimeError:     {"runtime error", true, ansi.BoldRed},
	WarningHigh:      {"warning (high)", true, ansi.BoldYellow},
	Warning:          {"warning", true, ansi.BoldYellow},
	WarningLow:       {"warning (low)", true, ansi.BoldCyan},
	Message:          {"message", true, ansi.BoldBlue},
	DebugMessage:     {"debug", false, ansi.BoldBlue},
	Spelling:         {"spelling", false, ansi.BoldBlue},
}

func (s Severity) valid() bool {
	return s >= CompileTimeError && s <= Spelling
}

func (s Severity) String() string {
	if !s.valid() {
		return "unknown"
	}
	return tiers[s].label
}

// IsError reports whether s is one of the error tiers.
func (s Severity) IsError() bool {
	return s == CompileTimeError || s == RuntimeError
}

// IsWarning reports whether s is one of the warning tiers.
func (s Severity) IsWarning() bool {
	return s == WarningHigh || s == Warning || s == WarningLow
}

// DefaultVisible reports whether diagnostics of tier s are emitted without
// opting in.
func (s Severity) DefaultVisible() bool {
	return s.valid() && tiers[s].visible
}

func (s Severity) style() ansi.Style {
	if !s.valid() {
		return ansi.BoldRed
	}
	return tiers[s].style
}
