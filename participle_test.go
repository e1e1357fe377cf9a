package nain_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/nain-lang/go-nain"
	"github.com/nain-lang/go-nain/errors"
	"github.com/stretchr/testify/require"
)

type program struct {
	Statements []*letStatement `@@*`
}

type letStatement struct {
	Mutable bool   `"let" @"mut"?`
	Name    string `@IDENT`
	Type    string `( ":" @( "i32" | "str" ) )?`
	Value   *value `"=" @@ ";"`
}

type value struct {
	Int    *int    `  @INT`
	String *string `| @STRING`
	Ident  *string `| @IDENT`
}

func TestParticipleGrammar(t *testing.T) {
	parser := participle.MustBuild[program](participle.Lexer(nain.NewDefinition()))

	prog, err := parser.ParseString("main.nain", "let x = 1;\nlet mut name: str = \"nain\";\nlet y = x;")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 3)

	first := prog.Statements[0]
	require.False(t, first.Mutable)
	require.Equal(t, "x", first.Name)
	require.NotNil(t, first.Value.Int)
	require.Equal(t, 1, *first.Value.Int)

	second := prog.Statements[1]
	require.True(t, second.Mutable)
	require.Equal(t, "name", second.Name)
	require.Equal(t, "str", second.Type)
	require.Equal(t, `"nain"`, *second.Value.String)

	require.Equal(t, "x", *prog.Statements[2].Value.Ident)
}

func TestParticipleSyntaxError(t *testing.T) {
	parser := participle.MustBuild[program](participle.Lexer(nain.NewDefinition()))

	_, err := parser.ParseString("main.nain", "let = 1;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "main.nain:1:")

	var lexErr errors.LexError
	require.False(t, stderrors.As(err, &lexErr), "a syntax error is not a lexical error")
}

func TestParticipleLexicalError(t *testing.T) {
	parser := participle.MustBuild[program](participle.Lexer(nain.NewDefinition()))

	_, err := parser.ParseString("main.nain", "let x = \"a\\qb\";")
	require.Error(t, err)

	var lexErr errors.LexError
	require.True(t, stderrors.As(err, &lexErr), "got %T: %v", err, err)
	require.Equal(t, 1, lexErr.Line)
	require.Equal(t, 11, lexErr.Column)
	require.Equal(t, `invalid escape sequence: unknown escape sequence \q`, lexErr.Message)
}

func TestDefinitionTokens(t *testing.T) {
	def := nain.NewDefinition()
	symbols := def.Symbols()
	require.Equal(t, plexer.EOF, symbols["EOF"])
	require.Contains(t, symbols, "IDENT")
	require.Contains(t, symbols, "->")

	lex, err := def.Lex("main.nain", strings.NewReader("a -> b"))
	require.NoError(t, err)

	var values []string
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		if tok.EOF() {
			require.Equal(t, plexer.Position{Filename: "main.nain", Offset: 6, Line: 1, Column: 7}, tok.Pos)
			break
		}
		values = append(values, tok.Value)
	}
	require.Equal(t, []string{"a", "->", "b"}, values)

	// Distinct token types map to distinct participle types.
	seen := map[plexer.TokenType]string{}
	for name, tt := range symbols {
		other, dup := seen[tt]
		require.False(t, dup, "%s and %s share a token type", name, other)
		seen[tt] = name
	}
}
