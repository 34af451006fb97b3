// Package choose implements the interactive selection lists that accompany
// polyfmt: a single-choice picker and a paged multi-select picker. Key
// decoding and terminal raw mode are handled by bubbletea; this package
// only reacts to already-resolved key presses.
package choose

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dkoosis/polyfmt/internal/logging"
)

// ErrInterrupted reports that the user abandoned the picker before
// committing, so no valid result exists.
var ErrInterrupted = errors.New("selection interrupted before completion")

// Item is one selectable entry. Label is what the user sees; Value is the
// raw value handed back to the caller, which is handy when the two differ.
type Item struct {
	Label    string
	Value    string
	Selected bool
}

// FromMap builds a label-sorted item list from a label-to-value mapping.
func FromMap(choices map[string]string) []Item {
	items := make([]Item, 0, len(choices))
	for label, value := range choices {
		items = append(items, Item{Label: label, Value: value})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items
}

// One shows a single-choice picker over items and returns the entry the
// user committed with enter. An interrupt before commit returns
// ErrInterrupted.
func One(items []Item) (Item, error) {
	if len(items) == 0 {
		return Item{}, errors.New("no items to choose from")
	}

	final, err := runPicker(newModel(modeOne, cloneItems(items), len(items)))
	if err != nil {
		return Item{}, err
	}
	return final.items[final.cursor], nil
}

// Many shows a multi-select picker over items, windowed to pageSize rows.
// Space toggles the entry under the cursor, enter commits. The returned
// slice carries the final Selected flags. An interrupt before commit
// returns ErrInterrupted.
func Many(items []Item, pageSize int) ([]Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	final, err := runPicker(newModel(modeMany, cloneItems(items), pageSize))
	if err != nil {
		return nil, err
	}
	return final.items, nil
}

func runPicker(m model) (model, error) {
	raw, err := tea.NewProgram(m).Run()
	if err != nil {
		logging.GetLogger("choose").Debug().Err(err).Msg("picker terminated abnormally")
		return model{}, fmt.Errorf("running picker: %w", err)
	}
	final := raw.(model)
	if final.interrupted || !final.done {
		return model{}, ErrInterrupted
	}
	return final, nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

type mode int

const (
	modeOne mode = iota
	modeMany
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var defaultKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Toggle: key.NewBinding(key.WithKeys(" ")),
	Submit: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}

type pickerStyles struct {
	cursor   lipgloss.Style
	selected lipgloss.Style
	active   lipgloss.Style
}

func newPickerStyles(color bool) pickerStyles {
	if !color {
		return pickerStyles{}
	}
	return pickerStyles{
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		active:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
	}
}

type model struct {
	mode     mode
	items    []Item
	keys     keyMap
	styles   pickerStyles
	cursor   int
	start    int
	pageSize int

	done        bool
	interrupted bool
}

func newModel(mode mode, items []Item, pageSize int) model {
	if pageSize <= 0 {
		pageSize = len(items)
	}
	return model{
		mode:     mode,
		items:    items,
		keys:     defaultKeys,
		styles:   newPickerStyles(colorEnabled()),
		pageSize: pageSize,
		start:    clampWindow(0, 0, len(items), pageSize),
	}
}

func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(os.Stdout.Fd())
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.interrupted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Submit):
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.mode == modeMany {
			m.items[m.cursor].Selected = !m.items[m.cursor].Selected
		}
	}

	m.start = clampWindow(m.cursor, m.start, len(m.items), m.pageSize)
	return m, nil
}

func (m model) View() string {
	// Leave nothing behind once the picker is decided.
	if m.done || m.interrupted {
		return ""
	}

	var b strings.Builder
	end := min(m.start+m.pageSize, len(m.items))
	for i := m.start; i < end; i++ {
		if m.mode == modeOne {
			b.WriteString(m.renderOneRow(i))
		} else {
			b.WriteString(m.renderManyRow(i))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m model) renderOneRow(i int) string {
	if i == m.cursor {
		return m.styles.cursor.Render("> " + m.items[i].Label)
	}
	return "  " + m.items[i].Label
}

func (m model) renderManyRow(i int) string {
	item := m.items[i]

	prefix := " "
	if i == m.cursor {
		prefix = m.styles.cursor.Render(">")
	}

	box := "[ ]"
	if item.Selected {
		box = "[" + m.styles.selected.Render("*") + "]"
	}

	label := item.Label
	switch {
	case item.Selected && i == m.cursor:
		label = m.styles.selected.Underline(true).Render(label)
	case i == m.cursor:
		label = m.styles.active.Render(label)
	case item.Selected:
		label = m.styles.selected.Render(label)
	}

	return prefix + " " + box + " " + label
}
