package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"func", FUNC},
		{"let", LET},
		{"return", RETURN},
		{"null", NULL},
		{"i32", I32},
		{"uarch", UARCH},
		{"str", STR},
		{"true", IDENT}, // boolean literals are not keywords
		{"false", IDENT},
		{"Func", IDENT},
		{"my_var", IDENT},
		{"r2d2", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, LookupIdent(tt.input))
		})
	}
}

func TestLookupAndSpellingAreInverse(t *testing.T) {
	for _, typ := range Types() {
		spelling := Spelling(typ)
		if spelling == "" {
			require.False(t, typ.IsKeyword() || typ.IsPrimitive() || typ.IsOperator() || typ.IsPunctuation(),
				"%s has a fixed-spelling category but no spelling", typ)
			continue
		}
		got, ok := Lookup(spelling)
		require.True(t, ok, "spelling %q not found", spelling)
		require.Equal(t, typ, got)
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, s := range []string{"", "foo", "=!", "#", "<<<", "true"} {
		_, ok := Lookup(s)
		require.False(t, ok, "Lookup(%q)", s)
	}
}

func TestOperatorsSortedLongestFirst(t *testing.T) {
	ops := Operators()
	require.NotEmpty(t, ops)
	require.Equal(t, MaxOperatorLength, len(ops[0]))
	require.Equal(t, 3, MaxOperatorLength)

	for i := 1; i < len(ops); i++ {
		require.GreaterOrEqual(t, len(ops[i-1]), len(ops[i]), "%q before %q", ops[i-1], ops[i])
	}

	// The returned slice is a copy.
	ops[0] = "mutated"
	require.NotEqual(t, "mutated", Operators()[0])
}

func TestOperatorPrefixes(t *testing.T) {
	// Operator spellings may be prefixes of each other; the tokenizer
	// relies on the table to resolve them by length.
	for _, pair := range [][2]string{{"=", "=="}, {"==", "==="}, {"<", "<<="}, {".", ".."}, {"-", "->"}} {
		short, ok := LookupSymbol(pair[0])
		require.True(t, ok)
		long, ok := LookupSymbol(pair[1])
		require.True(t, ok)
		require.NotEqual(t, short, long)
	}
}

func TestIsSymbolStart(t *testing.T) {
	for _, b := range []byte("()[]{},;:.+-*/%^=!<>&|~$") {
		require.True(t, IsSymbolStart(b), "%q", b)
	}
	for _, b := range []byte("aZ_09\"'#@` \n\\?") {
		require.False(t, IsSymbolStart(b), "%q", b)
	}
	require.False(t, IsSymbolStart(0xC3))
}

func TestCategories(t *testing.T) {
	require.True(t, FUNC.IsKeyword())
	require.False(t, FUNC.IsPrimitive())
	require.True(t, I64.IsPrimitive())
	require.True(t, DOUBLE_COLON.IsPunctuation())
	require.True(t, SHL_ASSIGN.IsOperator())
	require.True(t, BOOLEAN.IsLiteral())
	require.False(t, IDENT.IsLiteral())
	require.False(t, Type("nope").IsKeyword())
}

func TestKeywordSpellingsUnique(t *testing.T) {
	seen := make(map[string]Type)
	for _, typ := range Types() {
		if !typ.IsKeyword() && !typ.IsPrimitive() {
			continue
		}
		s := Spelling(typ)
		prev, dup := seen[s]
		require.False(t, dup, "%q used by %s and %s", s, prev, typ)
		seen[s] = typ
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: EQ, Literal: "==", Line: 2, Column: 5, Offset: 9}
	require.Equal(t, `2:5 == "=="`, tok.String())
	require.Equal(t, Position{Line: 2, Column: 5}, tok.Pos())
	require.Equal(t, "3:1 EOF", Token{Type: EOF, Line: 3, Column: 1}.String())
}
