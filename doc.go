/*
Package nain tokenizes source code written in the Nain programming language
and reports lexical problems as rendered diagnostics.

The package offers two entry points depending on how the caller wants to
handle problems in the source:

1. Diagnostic-Oriented Tokenizing

Tokenize returns the full token stream together with the diagnostic.Reporter
that collected every problem found while scanning. Lexical problems never
stop the scan: each one becomes an ILLEGAL token plus a diagnostic, so a
single pass reports everything that is wrong with a file.

	toks, rep, err := nain.Tokenize("main.nain", src, nain.Verbose())
	if err != nil {
		// invalid option
	}
	if err := rep.Emit(); err != nil {
		// writing diagnostics failed
	}

2. Error-Oriented Tokenizing

Lex returns the same tokens and folds every error-tier diagnostic into an
errors.LexErrors value, for callers that only need a Go error.

	toks, err := nain.Lex("main.nain", src)
	var lexErrs errors.LexErrors
	if stderrors.As(err, &lexErrs) {
		// inspect individual errors
	}

Parsers built with github.com/alecthomas/participle/v2 can consume Nain
tokens directly through NewDefinition.
*/
package nain
