package nain

import (
	"io"
	"maps"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/nain-lang/go-nain/diagnostic"
	"github.com/nain-lang/go-nain/errors"
	"github.com/nain-lang/go-nain/lexer"
	"github.com/nain-lang/go-nain/token"
)

// Definition adapts the Nain tokenizer to participle, so a grammar can be
// built with participle.Lexer(nain.NewDefinition()).
//
// Symbol names are the token type names (IDENT, INT, LET, ...) plus EOF.
// Punctuation and operator types are named by their spelling, so grammars
// usually match them as literals, for example "=" or "->".
type Definition struct {
	symbols map[string]plexer.TokenType
	types   map[token.Type]plexer.TokenType
}

var (
	_ plexer.Definition       = (*Definition)(nil)
	_ plexer.StringDefinition = (*Definition)(nil)
	_ plexer.BytesDefinition  = (*Definition)(nil)
)

// NewDefinition returns a participle lexer definition for Nain.
func NewDefinition() *Definition {
	d := &Definition{
		symbols: map[string]plexer.TokenType{"EOF": plexer.EOF},
		types:   map[token.Type]plexer.TokenType{token.EOF: plexer.EOF},
	}
	for _, typ := range token.Types() {
		if typ == token.EOF {
			continue
		}
		tt := plexer.TokenType(-len(d.symbols) - 1)
		d.symbols[string(typ)] = tt
		d.types[typ] = tt
	}
	return d
}

// Symbols returns the mapping of symbol names to participle token types.
func (d *Definition) Symbols() map[string]plexer.TokenType {
	return maps.Clone(d.symbols)
}

// Lex reads all of r and tokenizes it.
func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, src)
}

// LexString tokenizes input.
func (d *Definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

// LexBytes tokenizes input.
func (d *Definition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	pl := &participleLexer{def: d, filename: filename}
	pl.lex = lexer.New(input, &pl.pending)
	return pl, nil
}

type participleLexer struct {
	def      *Definition
	filename string
	lex      *lexer.Lexer
	pending  pendingErrors
}

// Next returns the next token. An ILLEGAL token is returned as an
// errors.LexError describing the first problem found in it.
func (pl *participleLexer) Next() (plexer.Token, error) {
	pl.pending = pl.pending[:0]
	tok := pl.lex.NextToken()

	if tok.Type == token.ILLEGAL {
		err := errors.LexError{Message: "illegal token " + tok.Literal, Line: tok.Line, Column: tok.Column}
		if len(pl.pending) > 0 {
			err = pl.pending[0]
		}
		return plexer.Token{}, err
	}

	return plexer.Token{
		Type:  pl.def.types[tok.Type],
		Value: tok.Literal,
		Pos: plexer.Position{
			Filename: pl.filename,
			Offset:   tok.Offset,
			Line:     tok.Line,
			Column:   tok.Column,
		},
	}, nil
}

// pendingErrors collects the error-tier diagnostics recorded while a single
// token is scanned.
type pendingErrors []errors.LexError

func (p *pendingErrors) Record(sev diagnostic.Severity, message, title string, line, column int) {
	if !sev.IsError() {
		return
	}
	*p = append(*p, errors.LexError{
		Message: describe(diagnostic.Diagnostic{Severity: sev, Message: message, Title: title}),
		Line:    line,
		Column:  column,
	})
}
