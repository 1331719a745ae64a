package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"adaptkit/internal/color"
	"adaptkit/pkg/logging"
)

// keyMap defines the keybindings for the walkthrough.
type keyMap struct {
	Next key.Binding
	Quit key.Binding
}

// defaultKeyMap returns a keyMap with default bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "n"),
			key.WithHelp("enter", "next step"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// walkthroughModel steps through the demo sections one keypress at a
// time. revealed counts how many sections are currently shown; once all
// are shown the next keypress quits.
type walkthroughModel struct {
	sections []Section
	palette  color.Palette
	keys     keyMap
	revealed int
	quitting bool
}

func newWalkthroughModel(sections []Section, palette color.Palette) walkthroughModel {
	return walkthroughModel{
		sections: sections,
		palette:  palette,
		keys:     defaultKeyMap(),
		revealed: 1,
	}
}

// Init implements tea.Model.
func (m walkthroughModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m walkthroughModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.revealed >= len(m.sections) {
				m.quitting = true
				return m, tea.Quit
			}
			m.revealed++
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m walkthroughModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.palette.Title.Render("Adapter pattern walkthrough"))
	b.WriteString("\n\n")

	for i := 0; i < m.revealed && i < len(m.sections); i++ {
		section := m.sections[i]
		b.WriteString(m.palette.Narration.Render(section.Narration))
		b.WriteString("\n")
		b.WriteString(m.bodyStyle(section.Kind).Render(section.Body))
		b.WriteString("\n\n")
	}

	help := fmt.Sprintf("%s • %s",
		m.keys.Next.Help().Key+" "+m.keys.Next.Help().Desc,
		m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc)
	if m.revealed >= len(m.sections) {
		help = "enter to finish • " + m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc
	}
	b.WriteString(m.palette.Muted.Render(help))
	return b.String()
}

func (m walkthroughModel) bodyStyle(kind SectionKind) lipgloss.Style {
	switch kind {
	case KindRaw:
		return m.palette.Raw
	case KindTranslated:
		return m.palette.Translated
	default:
		return m.palette.Default
	}
}

// RunWalkthrough runs the interactive walkthrough over the given
// sections until the user steps past the last one or quits.
func RunWalkthrough(sections []Section, palette color.Palette) error {
	logging.Debug("demo", "Starting interactive walkthrough with %d sections", len(sections))

	program := tea.NewProgram(newWalkthroughModel(sections, palette))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running walkthrough: %w", err)
	}
	return nil
}
