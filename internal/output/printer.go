package output

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Printer writes user-facing output.
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter creates a Printer on out.
func NewPrinter(out io.Writer, styles Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

// Success prints a checkmarked line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.styles.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Println prints a plain line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Printf prints formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Heading prints a bold line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.out, p.styles.Heading.Render(text))
}

func (p *Printer) field(label, value string) {
	fmt.Fprintf(p.out, "  %s: %s\n", p.styles.Key.Render(label), value)
}

// ProfileDetails prints the URL and models of an activated profile.
func (p *Printer) ProfileDetails(env map[string]string) {
	if len(env) == 0 {
		return
	}

	fmt.Fprintln(p.out)
	p.Heading("Profile details:")
	if url, ok := env["ANTHROPIC_BASE_URL"]; ok {
		p.field("URL", url)
	}
	if model, ok := env["ANTHROPIC_MODEL"]; ok {
		p.field("Model", model)
	}
	if fast, ok := env["ANTHROPIC_SMALL_FAST_MODEL"]; ok {
		p.field("Fast Model", fast)
	}
}

// Variables prints key/value pairs sorted by key with sensitive values masked.
func (p *Printer) Variables(vars map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		p.field(key, DisplayValue(key, vars[key]))
	}
}

// EnvValues prints a settings env object. Non-string values are formatted with %v.
func (p *Printer) EnvValues(env map[string]any) {
	vars := make(map[string]string, len(env))
	for key, value := range env {
		vars[key] = fmt.Sprintf("%v", value)
	}
	p.Variables(vars)
}

// Dim prints a faint line.
func (p *Printer) Dim(text string) {
	fmt.Fprintln(p.out, p.styles.Dim.Render(text))
}

// ProfileRow is one line of the profile table.
type ProfileRow struct {
	Name        string
	Description string
	URL         string
	Model       string
	Default     bool
}

// ProfileTable renders rows as a bordered table.
func (p *Printer) ProfileTable(rows []ProfileRow) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.Border).
		Headers("Profile", "Description", "URL", "Model", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.styles.Header
			}
			return p.styles.Cell
		})

	for _, r := range rows {
		status := ""
		if r.Default {
			status = p.styles.Marker.Render("Default")
		}
		t.Row(
			r.Name,
			truncate(r.Description, 28),
			truncate(r.URL, 38),
			truncate(r.Model, 18),
			status,
		)
	}

	fmt.Fprintln(p.out, t.Render())
}
