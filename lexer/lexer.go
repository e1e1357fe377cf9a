package lexer

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/nain-lang/go-nain/diagnostic"
	"github.com/nain-lang/go-nain/token"
)

// Recorder receives the diagnostics produced while scanning.
// *diagnostic.Reporter implements it.
type Recorder interface {
	Record(sev diagnostic.Severity, message, title string, line, column int)
}

// Lexer holds the state for tokenizing Nain source.
type Lexer struct {
	input  []byte
	pos    int  // offset of ch
	next   int  // offset after ch
	ch     rune // current rune, -1 at end of input
	line   int
	column int
	rec    Recorder
}

type cursor struct {
	offset, line, column int
}

// New creates a Lexer over input. Lexical problems are recorded into r,
// which may be nil.
func New(input []byte, r Recorder) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
		rec:    r,
	}
	l.readRune()
	return l
}

// NextToken scans the input and returns the next token. Once the input is
// exhausted it returns EOF on every call.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()
		if l.ch == '/' && l.peek() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peek() == '*' {
			if tok, ok := l.skipBlockComment(); !ok {
				return tok
			}
			continue
		}
		break
	}

	start := l.mark()
	switch {
	case l.ch == -1:
		return l.token(token.EOF, start)
	case l.ch == '"':
		return l.readString(start)
	case l.ch == '\'':
		return l.readChar(start)
	case isWordChar(l.ch):
		return l.readWord(start)
	case l.ch < utf8.RuneSelf && token.IsSymbolStart(byte(l.ch)):
		return l.readSymbol(start)
	}
	return l.readIllegal(start)
}

// Tokens returns an iterator over the remaining tokens. The final token
// yielded is EOF.
func (l *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.Type == token.EOF {
				return
			}
		}
	}
}

// All scans the remaining input and returns its tokens, ending with EOF.
func (l *Lexer) All() []token.Token {
	return slices.Collect(l.Tokens())
}

func (l *Lexer) readRune() {
	l.pos = l.next
	if l.pos >= len(l.input) {
		l.ch = -1
		return
	}
	r, size := utf8.DecodeRune(l.input[l.pos:])
	l.ch = r
	l.next = l.pos + size
}

func (l *Lexer) advance() {
	if l.ch == -1 {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.readRune()
}

func (l *Lexer) peek() rune {
	if l.next >= len(l.input) {
		return -1
	}
	r, _ := utf8.DecodeRune(l.input[l.next:])
	return r
}

func (l *Lexer) mark() cursor {
	return cursor{offset: l.pos, line: l.line, column: l.column}
}

func (l *Lexer) token(typ token.Type, start cursor) token.Token {
	return token.Token{
		Type:    typ,
		Literal: string(l.input[start.offset:l.pos]),
		Line:    start.line,
		Column:  start.column,
		Offset:  start.offset,
	}
}

func (l *Lexer) report(sev diagnostic.Severity, at cursor, title, message string) {
	if l.rec != nil {
		l.rec.Record(sev, message, title, at.line, at.column)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.advance()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != -1 {
		l.advance()
	}
}

// skipBlockComment consumes a /* */ comment. Block comments do not nest.
// It returns false and an ILLEGAL token spanning the rest of the input
// when the comment is never closed.
func (l *Lexer) skipBlockComment() (token.Token, bool) {
	start := l.mark()
	l.advance() // consume '/'
	l.advance() // consume '*'
	for l.ch != -1 {
		if l.ch == '*' && l.peek() == '/' {
			l.advance()
			l.advance()
			return token.Token{}, true
		}
		l.advance()
	}
	l.report(diagnostic.CompileTimeError, start, "unterminated block comment", "block comment is never closed")
	return l.token(token.ILLEGAL, start), false
}

// readSymbol scans punctuation and operators, preferring the longest
// spelling in the catalog.
func (l *Lexer) readSymbol(start cursor) token.Token {
	for n := min(token.MaxOperatorLength, len(l.input)-l.pos); n > 0; n-- {
		typ, ok := token.LookupSymbol(string(l.input[l.pos : l.pos+n]))
		if !ok {
			continue
		}
		for range n {
			l.advance()
		}
		return l.token(typ, start)
	}
	return l.readIllegal(start)
}

func (l *Lexer) readWord(start cursor) token.Token {
	numeric := isDigit(l.ch)
	digitsOnly := numeric
	for {
		switch {
		case isWordChar(l.ch):
			digitsOnly = digitsOnly && isDigit(l.ch)
		case l.ch == '.' && digitsOnly && isDigit(l.peek()):
			digitsOnly = false
		case (l.ch == '+' || l.ch == '-') && numeric && isDigit(l.peek()) &&
			exponentPending(l.input[start.offset:l.pos]):
		default:
			return l.classifyWord(start)
		}
		l.advance()
	}
}

// classifyWord resolves a scanned word: keywords first, then numbers,
// then boolean literals, then identifiers.
func (l *Lexer) classifyWord(start cursor) token.Token {
	tok := l.token(token.IDENT, start)
	if typ := token.LookupIdent(tok.Literal); typ != token.IDENT {
		tok.Type = typ
		return tok
	}
	if isDigit(rune(tok.Literal[0])) {
		if typ, ok := ParseAsNumber(tok.Literal); ok {
			tok.Type = typ
		} else {
			l.report(diagnostic.Warning, start, "malformed number",
				fmt.Sprintf("%q is not a valid number and is read as an identifier", tok.Literal))
		}
		return tok
	}
	if tok.Literal == "true" || tok.Literal == "false" {
		tok.Type = token.BOOLEAN
	}
	return tok
}

func (l *Lexer) readString(start cursor) token.Token {
	l.advance() // consume opening quote
	valid := true
	for {
		switch l.ch {
		case -1:
			l.report(diagnostic.CompileTimeError, start, "unterminated string literal", "string literal is never closed")
			return l.token(token.ILLEGAL, start)
		case '"':
			l.advance()
			if !valid {
				return l.token(token.ILLEGAL, start)
			}
			return l.token(token.STRING, start)
		case '\\':
			valid = l.readEscape() && valid
		default:
			l.advance()
		}
	}
}

func (l *Lexer) readChar(start cursor) token.Token {
	l.advance() // consume opening quote
	valid := true
	count := 0
	for {
		switch l.ch {
		case -1, '\n':
			l.report(diagnostic.CompileTimeError, start, "unterminated character literal", "character literal is never closed")
			return l.token(token.ILLEGAL, start)
		case '\'':
			l.advance()
			switch {
			case !valid:
				return l.token(token.ILLEGAL, start)
			case count == 0:
				l.report(diagnostic.CompileTimeError, start, "empty character literal",
					"character literal must contain exactly one character")
				return l.token(token.ILLEGAL, start)
			case count > 1:
				l.report(diagnostic.CompileTimeError, start, "character literal too long",
					fmt.Sprintf("character literal must contain exactly one character, found %d", count))
				return l.token(token.ILLEGAL, start)
			}
			return l.token(token.CHARACTER, start)
		case '\\':
			valid = l.readEscape() && valid
			count++
		default:
			l.advance()
			count++
		}
	}
}

// readEscape consumes a backslash escape inside a string or character
// literal and reports whether it is valid. A backslash at the end of the
// input is left for the caller to report as an unterminated literal.
func (l *Lexer) readEscape() bool {
	at := l.mark()
	l.advance() // consume backslash
	switch l.ch {
	case -1:
		return true
	case 'n', 't', 'r', '0', '\\', '"', '\'':
		l.advance()
		return true
	case 'u':
		l.advance()
		var val rune
		for range 4 {
			d, ok := hexValue(l.ch)
			if !ok {
				l.report(diagnostic.CompileTimeError, at, "invalid escape sequence", `\u must be followed by four hex digits`)
				return false
			}
			val = val*16 + d
			l.advance()
		}
		if val >= 0xD800 && val <= 0xDFFF {
			l.report(diagnostic.CompileTimeError, at, "invalid escape sequence",
				fmt.Sprintf(`\u%04X is a surrogate half, not a character`, val))
			return false
		}
		return true
	case '\n':
		l.report(diagnostic.CompileTimeError, at, "invalid escape sequence", "a backslash cannot escape a line break")
		return false
	default:
		l.report(diagnostic.CompileTimeError, at, "invalid escape sequence",
			fmt.Sprintf(`unknown escape sequence \%c`, l.ch))
		l.advance()
		return false
	}
}

func (l *Lexer) readIllegal(start cursor) token.Token {
	ch := l.ch
	badEncoding := ch == utf8.RuneError && l.next-l.pos == 1
	l.advance()
	tok := l.token(token.ILLEGAL, start)
	if badEncoding {
		l.report(diagnostic.CompileTimeError, start, "invalid utf-8",
			fmt.Sprintf("byte 0x%02X is not valid UTF-8", tok.Literal[0]))
	} else {
		l.report(diagnostic.CompileTimeError, start, "unexpected character",
			fmt.Sprintf("%q cannot start a token", ch))
	}
	return tok
}

// ParseAsNumber classifies a decimal numeric word. Signed integers take
// precedence over unsigned ones, which take precedence over floats.
// Floats that overflow are still floats.
func ParseAsNumber(s string) (token.Type, bool) {
	if s == "" || !isDigit(rune(s[0])) {
		return token.ILLEGAL, false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(rune(c)), c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return token.ILLEGAL, false
		}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return token.INT, true
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return token.UINT, true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return token.FLOAT, true
	}
	return token.ILLEGAL, false
}

// exponentPending reports whether word is a decimal mantissa followed by
// an exponent marker, so that a sign may continue it.
func exponentPending(word []byte) bool {
	n := len(word)
	if n < 2 || (word[n-1] != 'e' && word[n-1] != 'E') {
		return false
	}
	for _, c := range word[:n-1] {
		if !isDigit(rune(c)) && c != '.' {
			return false
		}
	}
	return true
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || isDigit(ch) || ch == '_'
}

func hexValue(ch rune) (rune, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return ch - '0', true
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10, true
	case 'A' <= ch && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}
