package nain

import (
	"errors"
	"io"

	"github.com/nain-lang/go-nain/diagnostic"
)

type options struct {
	out     io.Writer
	color   *bool
	verbose bool
	lint    bool
}

// Option configures Tokenize and Lex.
type Option func(*options) error

// Output returns an Option that sets where diagnostics are written when the
// reporter is emitted. The default is standard error.
func Output(w io.Writer) Option {
	return func(o *options) error {
		if w == nil {
			return errors.New("nain: output writer must not be nil")
		}
		o.out = w
		return nil
	}
}

// Color returns an Option that forces colored output on or off. By default
// color is used unless the NO_COLOR environment variable is set.
func Color(enabled bool) Option {
	return func(o *options) error {
		o.color = &enabled
		return nil
	}
}

// Verbose returns an Option that shows debug diagnostics and records a
// summary of the scan as one.
func Verbose() Option {
	return func(o *options) error {
		o.verbose = true
		return nil
	}
}

// Lint returns an Option that shows spelling diagnostics.
func Lint() Option {
	return func(o *options) error {
		o.lint = true
		return nil
	}
}

func (o *options) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

func (o *options) reporterOptions() []diagnostic.Option {
	var ropts []diagnostic.Option
	if o.out != nil {
		ropts = append(ropts, diagnostic.WithOutput(o.out))
	}
	if o.color != nil {
		ropts = append(ropts, diagnostic.WithColor(*o.color))
	}
	if o.verbose {
		ropts = append(ropts, diagnostic.WithVerbose())
	}
	if o.lint {
		ropts = append(ropts, diagnostic.WithLint())
	}
	return ropts
}
