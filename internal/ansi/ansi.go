// Package ansi holds the small set of terminal styles used when rendering
// diagnostics.
package ansi

// Style is an ANSI SGR escape sequence.
type Style string

const (
	Reset Style = "\033[0m"

	Blue Style = "\033[34m"
	Cyan Style = "\033[36m"
	Grey Style = "\033[90m"
	Bold Style = "\033[1m"

	BoldRed    Style = "\033[1;31m"
	BoldYellow Style = "\033[1;33m"
	BoldBlue   Style = "\033[1;34m"
	BoldCyan   Style = "\033[1;36m"
)

// Painter wraps text in styles when enabled and passes it through otherwise.
type Painter struct {
	Enabled bool
}

// Paint returns s wrapped in style.
func (p Painter) Paint(style Style, s string) string {
	if !p.Enabled || s == "" {
		return s
	}
	return string(style) + s + string(Reset)
}
