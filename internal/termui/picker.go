package termui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user leaves the picker without choosing.
var ErrCanceled = errors.New("selection canceled")

// ErrNotTerminal is returned when the streams cannot host the picker.
var ErrNotTerminal = errors.New("not a terminal")

const pickerHint = "↑/↓ to move, Enter to select, q to cancel"

// PickerModel is a bubbletea model choosing one item from a list.
type PickerModel struct {
	prompt    string
	items     []string
	cursor    int
	confirmed bool
	cancelled bool

	cursorStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	hintStyle     lipgloss.Style
}

// NewPickerModel creates a picker over items with the cursor on defaultIndex.
func NewPickerModel(prompt string, items []string, defaultIndex int) *PickerModel {
	if defaultIndex < 0 || defaultIndex >= len(items) {
		defaultIndex = 0
	}
	return &PickerModel{
		prompt:        prompt,
		items:         items,
		cursor:        defaultIndex,
		cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		hintStyle:     lipgloss.NewStyle().Faint(true),
	}
}

func (m *PickerModel) Init() tea.Cmd {
	return nil
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyUp:
		m.moveUp()
	case tea.KeyDown:
		m.moveDown()
	case tea.KeyEnter:
		m.confirmed = true
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyRunes:
		if len(key.Runes) != 1 {
			break
		}
		switch key.Runes[0] {
		case 'j':
			m.moveDown()
		case 'k':
			m.moveUp()
		case 'q':
			m.cancelled = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *PickerModel) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.prompt + "\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(m.cursorStyle.Render(" > ") + m.selectedStyle.Render(item))
		} else {
			b.WriteString("   " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.hintStyle.Render(pickerHint) + "\n")
	return b.String()
}

// Selected returns the item under the cursor.
func (m *PickerModel) Selected() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor]
}

// Confirmed reports whether the user pressed Enter.
func (m *PickerModel) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user backed out.
func (m *PickerModel) Cancelled() bool {
	return m.cancelled
}

func (m *PickerModel) moveUp() {
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.items) - 1
	}
}

func (m *PickerModel) moveDown() {
	m.cursor++
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// Pick runs the picker on the streams and returns the chosen item.
// The cursor starts on defaultItem when it is present.
func Pick(ctx context.Context, s *IOStreams, prompt string, items []string, defaultItem string) (string, error) {
	if !s.IsInteractive() {
		return "", ErrNotTerminal
	}
	if len(items) == 0 {
		return "", fmt.Errorf("nothing to select")
	}

	defaultIndex := 0
	for i, item := range items {
		if item == defaultItem {
			defaultIndex = i
			break
		}
	}

	program := tea.NewProgram(
		NewPickerModel(prompt, items, defaultIndex),
		tea.WithContext(ctx),
		tea.WithInput(s.In),
		tea.WithOutput(s.Out),
	)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("profile picker failed: %w", err)
	}

	m, ok := final.(*PickerModel)
	if !ok || !m.Confirmed() {
		return "", ErrCanceled
	}
	return m.Selected(), nil
}
