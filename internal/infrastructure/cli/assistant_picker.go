package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wardsec/ward/internal/domain/assistant"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1).
				MarginBottom(1)

	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pickerDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pickerItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type assistantPickerModel struct {
	profiles  []assistant.Assistant
	cursor    int
	chosen    string
	cancelled bool
}

func (m assistantPickerModel) Init() tea.Cmd { return nil }

func (m assistantPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
		}
	case "enter":
		profile := m.profiles[m.cursor]
		if profile.Enabled {
			m.chosen = profile.Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m assistantPickerModel) View() string {
	s := pickerTitleStyle.Render("Select an assistant profile") + "\n"

	for i, profile := range m.profiles {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%s, %s)", cursor, profile.Name, profile.Type, profile.Model)
		switch {
		case !profile.Enabled:
			line += " (disabled)"
			s += pickerDimStyle.Render(line)
		case i == m.cursor:
			s += pickerSelectedStyle.Render(line)
		default:
			s += pickerItemStyle.Render(line)
		}
		s += "\n"
	}

	s += pickerHelpStyle.Render("up/down: move, enter: select, q: cancel")
	return s
}

// pickAssistant runs the interactive profile picker and returns the chosen
// profile name. Returns "" when the picker is dismissed.
func pickAssistant(profiles []assistant.Assistant) (string, error) {
	program := tea.NewProgram(assistantPickerModel{profiles: profiles})
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run assistant picker: %w", err)
	}

	model := final.(assistantPickerModel)
	if model.cancelled {
		return "", nil
	}
	return model.chosen, nil
}
