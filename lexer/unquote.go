package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Unquote interprets lit as the literal of a STRING or CHARACTER token and
// returns the value it denotes.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("lexer: %q is not a quoted literal", lit)
	}
	quote := lit[0]
	if (quote != '"' && quote != '\'') || lit[len(lit)-1] != quote {
		return "", fmt.Errorf("lexer: %q is not a quoted literal", lit)
	}

	body := lit[1 : len(lit)-1]
	var b strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c == quote {
			return "", fmt.Errorf("lexer: unescaped %c inside %s", quote, lit)
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("lexer: trailing backslash in %s", lit)
		}
		r, n, err := unescape(body[i+1:])
		if err != nil {
			return "", fmt.Errorf("lexer: %s: %w", lit, err)
		}
		b.WriteRune(r)
		i += 1 + n
	}

	s := b.String()
	if quote == '\'' && utf8.RuneCountInString(s) != 1 {
		return "", fmt.Errorf("lexer: character literal %s must hold exactly one character", lit)
	}
	return s, nil
}

// unescape decodes the escape sequence at the start of s, which follows a
// backslash, and returns the rune and the number of bytes consumed.
func unescape(s string) (rune, int, error) {
	switch s[0] {
	case 'n':
		return '\n', 1, nil
	case 't':
		return '\t', 1, nil
	case 'r':
		return '\r', 1, nil
	case '0':
		return 0, 1, nil
	case '\\':
		return '\\', 1, nil
	case '"':
		return '"', 1, nil
	case '\'':
		return '\'', 1, nil
	case 'u':
		if len(s) < 5 {
			return 0, 0, errors.New(`short \u escape`)
		}
		var val rune
		for _, ch := range s[1:5] {
			d, ok := hexValue(ch)
			if !ok {
				return 0, 0, fmt.Errorf(`invalid \u escape %q`, s[:5])
			}
			val = val*16 + d
		}
		if val >= 0xD800 && val <= 0xDFFF {
			return 0, 0, fmt.Errorf(`\u%04X is a surrogate half`, val)
		}
		return val, 5, nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	return 0, 0, fmt.Errorf(`unknown escape sequence \%c`, r)
}
