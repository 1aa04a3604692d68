package shell

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrSelectionCancelled is returned when the picker is dismissed without a
// choice.
var ErrSelectionCancelled = fmt.Errorf("shell selection cancelled")

var (
	selectorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1).
				MarginBottom(1)

	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	unselectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	unavailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k selectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k selectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

var selectorKeys = selectorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "cancel"),
	),
}

type selectorModel struct {
	options   []Option
	keys      selectorKeyMap
	help      help.Model
	cursor    int
	chosen    string
	cancelled bool
}

func newSelectorModel(options []Option) selectorModel {
	return selectorModel{
		options: options,
		keys:    selectorKeys,
		help:    help.New(),
	}
}

func (m selectorModel) Init() tea.Cmd { return nil }

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		option := m.options[m.cursor]
		if option.Available {
			m.chosen = option.Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectorModel) View() string {
	s := selectorTitleStyle.Render("Select your shell") + "\n"

	for i, option := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-6s %s", cursor, option.Name, option.Description)
		switch {
		case !option.Available:
			line += " (not installed)"
			s += unavailableStyle.Render(line)
		case i == m.cursor:
			s += selectedStyle.Render(line)
		default:
			s += unselectedStyle.Render(line)
		}
		s += "\n"
	}

	s += "\n" + m.help.View(m.keys)
	return s
}

// Select runs the interactive shell picker and returns the chosen shell
// name.
func Select(d *Detector) (string, error) {
	program := tea.NewProgram(newSelectorModel(d.Options()))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run shell picker: %w", err)
	}

	model := final.(selectorModel)
	if model.cancelled || model.chosen == "" {
		return "", ErrSelectionCancelled
	}
	return model.chosen, nil
}
