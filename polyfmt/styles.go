package polyfmt

import "github.com/charmbracelet/lipgloss"

// Column reserves per message kind. Kinds with a leading glyph reserve the
// glyph plus its trailing space, so wrapped continuation lines align under
// the text rather than under the glyph.
const (
	errorReserve    = 2 // "x "
	successReserve  = 2 // "✓ "
	warningReserve  = 3 // "!! "
	debugReserve    = 8 // "[debug] "
	questionReserve = 2 // "? "
)

// glyphs holds the pre-rendered kind markers and tree framing for one
// formatter. Styling is baked in at construction: when color is off the
// strings are the raw glyphs, so render paths never branch on it.
type glyphs struct {
	err      string
	success  string
	warning  string
	debug    string
	question string

	header   string // tree corner for the very first line
	branch   string // tree connector for subsequent lines
	vertical string // tree continuation marker
	gap      string // tree spacer
	dash     string // tree indentation fill
}

func newGlyphs(color bool) glyphs {
	g := glyphs{
		err:      "x",
		success:  "✓",
		warning:  "!!",
		debug:    "[debug]",
		question: "?",

		header:   "┌─",
		branch:   "├─",
		vertical: "│ ",
		gap:      "┊",
		dash:     "─",
	}
	if !color {
		return g
	}

	red := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	magenta := lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	faint := lipgloss.NewStyle().Faint(true)

	g.err = red.Render(g.err)
	g.success = green.Render(g.success)
	g.warning = yellow.Render(g.warning)
	g.debug = faint.Render(g.debug)
	g.question = magenta.Render(g.question)

	g.header = magenta.Render(g.header)
	g.branch = magenta.Render(g.branch)
	g.vertical = magenta.Render(g.vertical)
	g.gap = magenta.Render(g.gap)
	g.dash = magenta.Render(g.dash)

	return g
}
