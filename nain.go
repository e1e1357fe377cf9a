package nain

import (
	"fmt"

	"github.com/nain-lang/go-nain/diagnostic"
	"github.com/nain-lang/go-nain/errors"
	"github.com/nain-lang/go-nain/lexer"
	"github.com/nain-lang/go-nain/token"
)

// Tokenize scans src and returns its tokens, ending with EOF, along with the
// reporter holding every diagnostic produced during the scan. The returned
// error is non-nil only when an option is invalid; problems in the source
// are reported as ILLEGAL tokens and diagnostics.
func Tokenize(filename string, src []byte, opts ...Option) ([]token.Token, *diagnostic.Reporter, error) {
	var o options
	if err := o.apply(opts); err != nil {
		return nil, nil, err
	}

	rep := diagnostic.Open(filename, string(src), o.reporterOptions()...)
	toks := lexer.New(src, rep).All()

	if o.verbose {
		rep.Record(diagnostic.DebugMessage,
			fmt.Sprintf("%d token(s), %d diagnostic(s)", len(toks), rep.Len()),
			"tokenized "+filename, 0, 0)
	}
	return toks, rep, nil
}

// Lex scans src like Tokenize and returns the error-tier diagnostics as an
// errors.LexErrors value. The tokens are returned even when err is non-nil.
func Lex(filename string, src []byte, opts ...Option) ([]token.Token, error) {
	toks, rep, err := Tokenize(filename, src, opts...)
	if err != nil {
		return nil, err
	}

	var lexErrs errors.LexErrors
	for _, d := range rep.Diagnostics() {
		if !d.Severity.IsError() {
			continue
		}
		lexErrs = append(lexErrs, errors.LexError{
			Message: describe(d),
			Line:    d.Line,
			Column:  d.Column,
		})
	}
	if len(lexErrs) > 0 {
		return toks, lexErrs
	}
	return toks, nil
}

func describe(d diagnostic.Diagnostic) string {
	switch {
	case d.Title == "":
		return d.Message
	case d.Message == "":
		return d.Title
	}
	return d.Title + ": " + d.Message
}
