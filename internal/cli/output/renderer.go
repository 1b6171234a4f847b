// Package output renders command results for terminals, scripts and agents.
//
// The auto mode picks text when stdout is a terminal and markdown otherwise.
// Text is styled unless NO_COLOR is set. JSON is always available through
// --output json.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes lists every output mode.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles Styles
}

// NewRenderer creates a renderer writing results to out and diagnostics to errOut.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	tty := isTerminal(out)

	styles := PlainStyles()
	if tty && !termenv.EnvNoColor() {
		styles = DefaultStyles()
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  tty,
		styles: styles,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto: text on terminals, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether results go to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Styles returns the styles of the renderer.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Writer returns the writer results go to.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line of output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a styled header.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		return
	}
	r.Println(r.styles.Header.Render(text))
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render("✓ " + msg))
}

// Warning writes a warning to the diagnostics writer.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("! "+msg))
}

// Error writes an error to the diagnostics writer.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

// Muted returns text in the muted style.
func (r *Renderer) Muted(text string) string {
	return r.styles.Muted.Render(text)
}

// StatusLine writes a name with a status marker and an optional detail.
// status is one of "success", "warning" or "error".
func (r *Renderer) StatusLine(name, status, detail string) {
	var marker string
	switch status {
	case "success":
		marker = r.styles.Success.Render("✓")
	case "warning":
		marker = r.styles.Warning.Render("!")
	default:
		marker = r.styles.Error.Render("✗")
	}

	line := fmt.Sprintf("%s %s", marker, name)
	if detail != "" {
		line += " " + r.styles.Muted.Render(detail)
	}
	r.Println(line)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Table writes rows under header: a box table in text mode and a markdown
// table otherwise.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeText {
		t.SetStyle(table.StyleLight)
		t.Render()
		return
	}
	t.RenderMarkdown()
}

// FormatHeader returns a markdown header.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a markdown list item for a key and value.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}
