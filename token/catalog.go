package token

import (
	"fmt"
	"slices"
	"strings"
)

type category int

const (
	special category = iota
	literal
	keyword
	primitive
	punctuation
	operator
)

type entry struct {
	typ      Type
	spelling string
	cat      category
}

// catalog lists every token type in declaration order. Types without a
// fixed spelling have an empty spelling.
var catalog = []entry{
	{ILLEGAL, "", special},
	{EOF, "", special},
	{IDENT, "", special},

	{INT, "", literal},
	{UINT, "", literal},
	{FLOAT, "", literal},
	{STRING, "", literal},
	{CHARACTER, "", literal},
	{BOOLEAN, "", literal},

	{RETURN, "return", keyword},
	{FUNC, "func", keyword},
	{LET, "let", keyword},
	{CONST, "const", keyword},
	{GLOBL, "globl", keyword},
	{MUT, "mut", keyword},
	{IF, "if", keyword},
	{ELSE, "else", keyword},
	{ELIF, "elif", keyword},
	{WHILE, "while", keyword},
	{LOOP, "loop", keyword},
	{FOR, "for", keyword},
	{IN, "in", keyword},
	{EVAL, "eval", keyword},
	{IMPORT, "import", keyword},
	{EXPORT, "export", keyword},
	{ABSTRACT, "abstract", keyword},
	{FINAL, "final", keyword},
	{STATIC, "static", keyword},
	{INLINE, "inline", keyword},
	{VIRTUAL, "virtual", keyword},
	{CLASS, "class", keyword},
	{STRUCT, "struct", keyword},
	{ENUM, "enum", keyword},
	{UNION, "union", keyword},
	{EXTEND, "extend", keyword},
	{IMPLEMENT, "implement", keyword},
	{OVERRIDE, "override", keyword},
	{MACRO, "macro", keyword},
	{NULL, "null", keyword},

	{I8, "i8", primitive},
	{I16, "i16", primitive},
	{I32, "i32", primitive},
	{I64, "i64", primitive},
	{I128, "i128", primitive},
	{U8, "u8", primitive},
	{U16, "u16", primitive},
	{U32, "u32", primitive},
	{U64, "u64", primitive},
	{U128, "u128", primitive},
	{UARCH, "uarch", primitive},
	{F32, "f32", primitive},
	{F64, "f64", primitive},
	{BOOL, "bool", primitive},
	{CHAR, "char", primitive},
	{STR, "str", primitive},
	{BIT, "bit", primitive},
	{UNIT, "unit", primitive},

	{LPAREN, "(", punctuation},
	{RPAREN, ")", punctuation},
	{LBRACK, "[", punctuation},
	{RBRACK, "]", punctuation},
	{LBRACE, "{", punctuation},
	{RBRACE, "}", punctuation},
	{COMMA, ",", punctuation},
	{SEMICOLON, ";", punctuation},
	{COLON, ":", punctuation},
	{DOUBLE_COLON, "::", punctuation},
	{DOT, ".", punctuation},
	{DOUBLE_DOT, "..", punctuation},
	{ARROW, "->", punctuation},
	{FAT_ARROW, "=>", punctuation},

	{PLUS, "+", operator},
	{MINUS, "-", operator},
	{STAR, "*", operator},
	{SLASH, "/", operator},
	{PERCENT, "%", operator},
	{CARET, "^", operator},
	{EQ, "==", operator},
	{NOT_EQ, "!=", operator},
	{STRICT_EQ, "===", operator},
	{STRICT_NOT_EQ, "!==", operator},
	{LT, "<", operator},
	{LT_EQ, "<=", operator},
	{GT, ">", operator},
	{GT_EQ, ">=", operator},
	{ASSIGN, "=", operator},
	{PLUS_ASSIGN, "+=", operator},
	{MINUS_ASSIGN, "-=", operator},
	{STAR_ASSIGN, "*=", operator},
	{SLASH_ASSIGN, "/=", operator},
	{PERCENT_ASSIGN, "%=", operator},
	{CARET_ASSIGN, "^=", operator},
	{AMP_ASSIGN, "&=", operator},
	{PIPE_ASSIGN, "|=", operator},
	{SHL_ASSIGN, "<<=", operator},
	{SHR_ASSIGN, ">>=", operator},
	{AND, "&&", operator},
	{OR, "||", operator},
	{NOT, "!", operator},
	{XOR, "^^", operator},
	{AMPERSAND, "&", operator},
	{PIPE, "|", operator},
	{TILDE, "~", operator},
	{SHL, "<<", operator},
	{SHR, ">>", operator},
	{DOLLAR, "$", operator},
}

var (
	categories map[Type]category
	spellings  map[Type]string
	keywords   map[string]Type // keywords and primitive type names
	symbols    map[string]Type // punctuation and operators
	operators  []string        // symbol spellings, longest first
	symbolHead [128]bool       // ASCII bytes that can start a symbol

	// MaxOperatorLength is the length in bytes of the longest punctuation
	// or operator spelling. It bounds the lookahead of longest-match.
	MaxOperatorLength int
)

func init() {
	categories = make(map[Type]category, len(catalog))
	spellings = make(map[Type]string, len(catalog))
	keywords = make(map[string]Type)
	symbols = make(map[string]Type)

	for _, e := range catalog {
		if _, dup := categories[e.typ]; dup {
			panic(fmt.Sprintf("token: %s declared twice", e.typ))
		}
		categories[e.typ] = e.cat
		if e.spelling == "" {
			continue
		}
		spellings[e.typ] = e.spelling

		word := e.cat == keyword || e.cat == primitive
		table := symbols
		if word {
			table = keywords
		}
		if prev, dup := table[e.spelling]; dup {
			panic(fmt.Sprintf("token: spelling %q shared by %s and %s", e.spelling, prev, e.typ))
		}
		table[e.spelling] = e.typ

		if !word {
			operators = append(operators, e.spelling)
			symbolHead[e.spelling[0]] = true
			MaxOperatorLength = max(MaxOperatorLength, len(e.spelling))
		}
	}

	slices.SortFunc(operators, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
}

// Lookup returns the token type whose fixed spelling is s.
func Lookup(s string) (Type, bool) {
	if t, ok := keywords[s]; ok {
		return t, true
	}
	t, ok := symbols[s]
	return t, ok
}

// LookupSymbol returns the punctuation or operator type spelled s.
func LookupSymbol(s string) (Type, bool) {
	t, ok := symbols[s]
	return t, ok
}

// Spelling returns the canonical spelling of t, or "" when t has no fixed
// spelling (identifiers, literals, EOF and ILLEGAL).
func Spelling(t Type) string {
	return spellings[t]
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword or a primitive type name, it returns
// that token type. Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Operators returns the spellings of all punctuation and operator tokens
// sorted by descending length. The caller owns the returned slice.
func Operators() []string {
	return slices.Clone(operators)
}

// IsSymbolStart reports whether b can begin a punctuation or operator token.
func IsSymbolStart(b byte) bool {
	return b < 128 && symbolHead[b]
}

// Types returns every token type in declaration order.
func Types() []Type {
	types := make([]Type, len(catalog))
	for i, e := range catalog {
		types[i] = e.typ
	}
	return types
}

// Category predicates. Unknown types report false for all of them.
func (t Type) IsKeyword() bool     { return categories[t] == keyword }
func (t Type) IsPrimitive() bool   { return categories[t] == primitive }
func (t Type) IsPunctuation() bool { return categories[t] == punctuation }
func (t Type) IsOperator() bool    { return categories[t] == operator }
func (t Type) IsLiteral() bool     { return categories[t] == literal }
