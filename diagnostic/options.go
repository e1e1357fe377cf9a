package diagnostic

import "io"

// Option configures a Reporter.
type Option func(*Reporter)

// WithOutput sets the writer Emit renders to. The default is os.Stderr.
// A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.out = w
		}
	}
}

// WithColor turns ANSI colors on or off. Colors are on by default unless
// the NO_COLOR environment variable is set.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// WithVerbose makes Emit include DebugMessage diagnostics.
func WithVerbose() Option {
	return func(r *Reporter) {
		r.showDebug = true
	}
}

// WithLint makes Emit include Spelling diagnostics.
func WithLint() Option {
	return func(r *Reporter) {
		r.showSpelling = true
	}
}
