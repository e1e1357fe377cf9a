package diagnostic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nain-lang/go-nain/internal/ansi"
)

// renderer formats diagnostics in the usual compiler layout:
//
//	error: unterminated string literal
//	  --> main.nain:1:9
//	  |
//	1 | let s = "abc
//	  |         ^ string literal is never closed
//	  |
type renderer struct {
	r *Reporter
	b *strings.Builder
}

func (rd renderer) paint(style ansi.Style, s string) string {
	return ansi.Painter{Enabled: rd.r.color}.Paint(style, s)
}

func (rd renderer) render(d Diagnostic) {
	style := d.Severity.style()
	header := d.Title
	if header == "" {
		header = d.Message
	}
	fmt.Fprintf(rd.b, "%s: %s\n", rd.paint(style, d.Severity.String()), rd.paint(ansi.Bold, header))

	if d.Line == 0 {
		fmt.Fprintf(rd.b, "  %s %s\n", rd.paint(ansi.Blue, "-->"), rd.r.filename)
		if d.Title != "" && d.Message != "" {
			fmt.Fprintf(rd.b, "  %s %s\n", rd.paint(ansi.Cyan, "= note:"), d.Message)
		}
		rd.b.WriteByte('\n')
		return
	}

	fmt.Fprintf(rd.b, "  %s %s:%d:%d\n", rd.paint(ansi.Blue, "-->"), rd.r.filename, d.Line, d.Column)

	width := len(strconv.Itoa(d.Line))
	gutter := strings.Repeat(" ", width) + " |"
	rd.b.WriteString(rd.paint(ansi.Grey, gutter) + "\n")

	source := []rune(strings.TrimSuffix(rd.r.lines[d.Line-1], "\r"))
	col := d.Column - 1

	rd.b.WriteString(rd.paint(ansi.Grey, fmt.Sprintf("%*d |", width, d.Line)))
	rd.b.WriteByte(' ')
	if col < len(source) {
		rd.b.WriteString(string(source[:col]))
		rd.b.WriteString(rd.paint(style, string(source[col])))
		rd.b.WriteString(string(source[col+1:]))
	} else {
		rd.b.WriteString(string(source))
	}
	rd.b.WriteByte('\n')

	rd.b.WriteString(rd.paint(ansi.Grey, gutter))
	rd.b.WriteByte(' ')
	rd.b.WriteString(padding(source, col))
	caret := "^"
	if d.Title != "" && d.Message != "" {
		caret += " " + d.Message
	}
	rd.b.WriteString(rd.paint(style, caret))
	rd.b.WriteByte('\n')
	rd.b.WriteString(rd.paint(ansi.Grey, gutter) + "\n\n")
}

// padding returns the whitespace that places a caret under rune col of
// source, keeping tabs so the caret lines up in a terminal.
func padding(source []rune, col int) string {
	var b strings.Builder
	for i := 0; i < col; i++ {
		if i < len(source) && source[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
