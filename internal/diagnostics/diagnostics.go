// Package diagnostics renders lexer and parser errors for terminals: a
// header with the error code, the file position, the offending source line
// and a caret underline below the offending token.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	"github.com/msto63/lambda/foundation/lambda/lexer"
	"github.com/msto63/lambda/foundation/lambda/parser"
	"github.com/msto63/lambda/foundation/lambda/token"
	"github.com/msto63/lambda/foundation/utils/stringx"
)

// TabWidth is the number of columns a tab expands to in excerpts
const TabWidth = 4

// ColorMode selects when escape sequences are emitted
type ColorMode int

const (
	// ColorAuto colours output when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways always colours output
	ColorAlways
	// ColorNever never colours output
	ColorNever
)

// ParseColorMode parses auto, always or never
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q", s)
	}
}

// Renderer formats diagnostics
type Renderer struct {
	styles styles
}

// NewRenderer creates a renderer for output written to w
func NewRenderer(w io.Writer, mode ColorMode) *Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: newStyles(r)}
}

// Diagnostic is the position information extracted from an error
type Diagnostic struct {
	Code    mdwerror.Code
	Message string
	Line    int
	Column  int
	Width   int
	// Note points at the opening token of an unterminated form
	Note string
}

// FromError extracts a diagnostic from a lexer or parser error anywhere in
// the chain of err. The second result is false for other errors.
func FromError(err error) (Diagnostic, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return Diagnostic{
			Code:    lexErr.Code(),
			Message: fmt.Sprintf("illegal character %q", lexErr.Token.Text),
			Line:    lexErr.Token.Line,
			Column:  lexErr.Token.Column,
			Width:   lexErr.Token.Span.Len(),
		}, true
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		d := Diagnostic{
			Code:    parseErr.Code(),
			Message: parseErr.Message(),
			Line:    parseErr.Found.Line,
			Column:  parseErr.Found.Column,
			Width:   parseErr.Found.Span.Len(),
		}
		if parseErr.Open.Line > 0 {
			d.Note = fmt.Sprintf("%s opened here at %s", describeOpen(parseErr.Open), parseErr.Open.Position())
		}
		return d, true
	}

	return Diagnostic{}, false
}

func describeOpen(t token.Token) string {
	if t.Kind == token.LParen {
		return "'('"
	}
	return t.Kind.String()
}

// Render formats err against the source it was produced from. Errors without
// position information are rendered as a single line.
func (r *Renderer) Render(name, src string, err error) string {
	if err == nil {
		return ""
	}
	name = stringx.FirstNonBlank(name, "<input>")

	d, ok := FromError(err)
	if !ok {
		code := mdwerror.GetCode(err)
		return r.header(code, err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(r.header(d.Code, d.Message))
	b.WriteByte('\n')

	gutterWidth := len(strconv.Itoa(d.Line))
	pad := strings.Repeat(" ", gutterWidth)

	b.WriteString(pad)
	b.WriteString(r.styles.gutter.Render("--> "))
	b.WriteString(r.styles.location.Render(fmt.Sprintf("%s:%d:%d", name, d.Line, d.Column)))
	b.WriteByte('\n')

	line := stringx.LineAt(src, d.Line)
	b.WriteString(pad + " " + r.styles.gutter.Render("|") + "\n")
	b.WriteString(r.styles.gutter.Render(stringx.PadLeft(strconv.Itoa(d.Line), gutterWidth, ' ')+" | "))
	b.WriteString(stringx.ExpandTabs(line, TabWidth))
	b.WriteByte('\n')

	offset, width := caretGeometry(line, d.Column, d.Width)
	b.WriteString(pad + " " + r.styles.gutter.Render("|") + " ")
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteString(r.styles.caret.Render(strings.Repeat("^", width)))
	b.WriteByte('\n')

	if d.Note != "" {
		b.WriteString(pad + " " + r.styles.gutter.Render("=") + " ")
		b.WriteString(r.styles.note.Render("note: " + d.Note))
		b.WriteByte('\n')
	}

	return b.String()
}

// Summary renders the closing line of a batch check
func (r *Renderer) Summary(files, failed int) string {
	if failed == 0 {
		return r.styles.ok.Render(fmt.Sprintf("%d file(s) ok", files))
	}
	return r.styles.severity.Render(fmt.Sprintf("%d of %d file(s) failed", failed, files))
}

func (r *Renderer) header(code mdwerror.Code, message string) string {
	return r.styles.severity.Render("error") +
		r.styles.code.Render("["+code.String()+"]") +
		r.styles.message.Render(": "+message)
}

// caretGeometry returns the display offset and width of the underline for a
// token at the 1-based byte column col spanning n bytes of line. The
// underline is at least one column wide and never runs past the line end
// by more than one column.
func caretGeometry(line string, col, n int) (offset, width int) {
	start := col - 1
	if start < 0 {
		start = 0
	}
	if start > len(line) {
		start = len(line)
	}
	end := start + n
	if end > len(line) {
		end = len(line)
	}

	offset = runewidth.StringWidth(stringx.ExpandTabs(line[:start], TabWidth))
	width = runewidth.StringWidth(stringx.ExpandTabs(line[start:end], TabWidth))
	if width < 1 {
		width = 1
	}
	return offset, width
}
