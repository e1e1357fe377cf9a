package token

import "fmt"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string // exact source text consumed by the token
	Line    int
	Column  int // 1-based, counted in runes
	Offset  int // 0-based byte offset of Literal in the source
}

// Position is a 1-based line and rune column.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Pos returns the position of the first character of the token.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column}
}

func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("%s %s", t.Pos(), t.Type)
	}
	return fmt.Sprintf("%s %s %q", t.Pos(), t.Type, t.Literal)
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown character or malformed literal
	EOF     Type = "EOF"     // End of file
	IDENT   Type = "IDENT"   // main, my_var, x1

	// Literals
	INT       Type = "INT"       // 42
	UINT      Type = "UINT"      // 18446744073709551615
	FLOAT     Type = "FLOAT"     // 5.0, 1e9
	STRING    Type = "STRING"    // "hello"
	CHARACTER Type = "CHARACTER" // 'a'
	BOOLEAN   Type = "BOOLEAN"   // true, false

	// Keywords
	RETURN    Type = "RETURN"
	FUNC      Type = "FUNC"
	LET       Type = "LET"
	CONST     Type = "CONST"
	GLOBL     Type = "GLOBL"
	MUT       Type = "MUT"
	IF        Type = "IF"
	ELSE      Type = "ELSE"
	ELIF      Type = "ELIF"
	WHILE     Type = "WHILE"
	LOOP      Type = "LOOP"
	FOR       Type = "FOR"
	IN        Type = "IN"
	EVAL      Type = "EVAL"
	IMPORT    Type = "IMPORT"
	EXPORT    Type = "EXPORT"
	ABSTRACT  Type = "ABSTRACT"
	FINAL     Type = "FINAL"
	STATIC    Type = "STATIC"
	INLINE    Type = "INLINE"
	VIRTUAL   Type = "VIRTUAL"
	CLASS     Type = "CLASS"
	STRUCT    Type = "STRUCT"
	ENUM      Type = "ENUM"
	UNION     Type = "UNION"
	EXTEND    Type = "EXTEND"
	IMPLEMENT Type = "IMPLEMENT"
	OVERRIDE  Type = "OVERRIDE"
	MACRO     Type = "MACRO"
	NULL      Type = "NULL"

	// Primitive types
	I8    Type = "I8"
	I16   Type = "I16"
	I32   Type = "I32"
	I64   Type = "I64"
	I128  Type = "I128"
	U8    Type = "U8"
	U16   Type = "U16"
	U32   Type = "U32"
	U64   Type = "U64"
	U128  Type = "U128"
	UARCH Type = "UARCH" // pointer-sized unsigned
	F32   Type = "F32"
	F64   Type = "F64"
	BOOL  Type = "BOOL"
	CHAR  Type = "CHAR"
	STR   Type = "STR"
	BIT   Type = "BIT"
	UNIT  Type = "UNIT"

	// Delimiters
	LPAREN       Type = "("
	RPAREN       Type = ")"
	LBRACK       Type = "["
	RBRACK       Type = "]"
	LBRACE       Type = "{"
	RBRACE       Type = "}"
	COMMA        Type = ","
	SEMICOLON    Type = ";"
	COLON        Type = ":"
	DOUBLE_COLON Type = "::"
	DOT          Type = "."
	DOUBLE_DOT   Type = ".."
	ARROW        Type = "->"
	FAT_ARROW    Type = "=>"

	// Arithmetic
	PLUS    Type = "+"
	MINUS   Type = "-"
	STAR    Type = "*"
	SLASH   Type = "/"
	PERCENT Type = "%"
	CARET   Type = "^" // power

	// Comparison
	EQ            Type = "=="
	NOT_EQ        Type = "!="
	STRICT_EQ     Type = "==="
	STRICT_NOT_EQ Type = "!=="
	LT            Type = "<"
	LT_EQ         Type = "<="
	GT            Type = ">"
	GT_EQ         Type = ">="

	// Assignment
	ASSIGN         Type = "="
	PLUS_ASSIGN    Type = "+="
	MINUS_ASSIGN   Type = "-="
	STAR_ASSIGN    Type = "*="
	SLASH_ASSIGN   Type = "/="
	PERCENT_ASSIGN Type = "%="
	CARET_ASSIGN   Type = "^="
	AMP_ASSIGN     Type = "&="
	PIPE_ASSIGN    Type = "|="
	SHL_ASSIGN     Type = "<<="
	SHR_ASSIGN     Type = ">>="

	// Logical
	AND Type = "&&"
	OR  Type = "||"
	NOT Type = "!"
	XOR Type = "^^"

	// Bitwise and reference
	AMPERSAND Type = "&" // bitwise and, or take reference in prefix position
	PIPE      Type = "|"
	TILDE     Type = "~"
	SHL       Type = "<<"
	SHR       Type = ">>"
	DOLLAR    Type = "$" // dereference
)
