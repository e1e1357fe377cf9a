package diagnostic

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

// Diagnostic is a single recorded report. It is never modified after
// Record returns.
type Diagnostic struct {
	Severity Severity
	Message  string
	Title    string
	Line     int // 1-based; 0 when the diagnostic has no source location
	Column   int // 1-based rune column
}

// Reporter collects the diagnostics of one compilation unit and renders
// them on demand. A Reporter is not safe for concurrent use; create one per
// source file.
type Reporter struct {
	filename    string
	lines       []string
	diagnostics []Diagnostic

	out          io.Writer
	color        bool
	showDebug    bool
	showSpelling bool
}

// Open returns a Reporter scoped to the given source file. It performs no
// I/O.
func Open(filename, source string, opts ...Option) *Reporter {
	r := &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
		out:      os.Stderr,
		color:    os.Getenv("NO_COLOR") == "",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filename returns the name the reporter was opened with.
func (r *Reporter) Filename() string {
	return r.filename
}

// Record appends a diagnostic. Line 0 records a diagnostic without a source
// location. A position outside the source the reporter was opened with is a
// programming error and panics.
func (r *Reporter) Record(sev Severity, message, title string, line, column int) {
	if !sev.valid() {
		panic(fmt.Sprintf("diagnostic: unknown severity %d", int(sev)))
	}
	r.checkPosition(line, column)
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Severity: sev,
		Message:  message,
		Title:    title,
		Line:     line,
		Column:   column,
	})
}

func (r *Reporter) checkPosition(line, column int) {
	if line == 0 && column == 0 {
		return
	}
	if line < 1 || line > len(r.lines) {
		panic(fmt.Sprintf("diagnostic: line %d outside %s (%d lines)", line, r.filename, len(r.lines)))
	}
	width := utf8.RuneCountInString(r.lines[line-1])
	if column < 1 || column > width+1 {
		panic(fmt.Sprintf("diagnostic: column %d outside %s:%d (%d columns)", column, r.filename, line, width))
	}
}

// Diagnostics returns a copy of every recorded diagnostic in record order,
// including hidden tiers.
func (r *Reporter) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Len returns the number of recorded diagnostics.
func (r *Reporter) Len() int {
	return len(r.diagnostics)
}

// Count returns the number of diagnostics recorded with severity sev.
func (r *Reporter) Count(sev Severity) int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-tier diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity.IsError() {
			return true
		}
	}
	return false
}

// Summary describes the error and warning counts, or returns "" when there
// are none.
func (r *Reporter) Summary() string {
	var errs, warns int
	for _, d := range r.diagnostics {
		switch {
		case d.Severity.IsError():
			errs++
		case d.Severity.IsWarning():
			warns++
		}
	}
	switch {
	case errs > 0 && warns > 0:
		return fmt.Sprintf("%s: %d error(s) and %d warning(s)", r.filename, errs, warns)
	case errs > 0:
		return fmt.Sprintf("%s: %d error(s)", r.filename, errs)
	case warns > 0:
		return fmt.Sprintf("%s: %d warning(s)", r.filename, warns)
	}
	return ""
}

func (r *Reporter) visible(sev Severity) bool {
	switch sev {
	case DebugMessage:
		return r.showDebug
	case Spelling:
		return r.showSpelling
	}
	return sev.DefaultVisible()
}

// emitMu serializes writes from all reporters so blocks rendered by
// reporters sharing a writer never interleave.
var emitMu sync.Mutex

// Emit renders every visible diagnostic in record order and writes the
// result to the reporter's output in a single write.
func (r *Reporter) Emit() error {
	var b strings.Builder
	rd := renderer{r: r, b: &b}
	for _, d := range r.diagnostics {
		if r.visible(d.Severity) {
			rd.render(d)
		}
	}
	if b.Len() == 0 {
		return nil
	}

	emitMu.Lock()
	defer emitMu.Unlock()
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("diagnostic: writing %s diagnostics: %w", r.filename, err)
	}
	return nil
}
