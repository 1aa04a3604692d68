package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wardsec/ward/internal/domain/assistant"
)

func TestAssistantPicker_Navigation(t *testing.T) {
	m := assistantPickerModel{profiles: []assistant.Assistant{
		{Name: "Claude Sonnet", Type: assistant.TypeClaude, Model: "claude-3-sonnet", Enabled: true},
		{Name: "Broken", Type: assistant.TypeCustom, Model: "x", Enabled: false},
		{Name: "Gemini Pro", Type: assistant.TypeGemini, Model: "gemini-pro", Enabled: true},
	}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(assistantPickerModel)
	// enter on a disabled profile does nothing
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(assistantPickerModel)
	if m.chosen != "" {
		t.Errorf("disabled profile selected: %q", m.chosen)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(assistantPickerModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(assistantPickerModel)
	if m.chosen != "Gemini Pro" {
		t.Errorf("chosen = %q, want Gemini Pro", m.chosen)
	}
}

func TestAssistantPicker_Cancel(t *testing.T) {
	m := assistantPickerModel{profiles: []assistant.Assistant{
		{Name: "Claude Sonnet", Enabled: true},
	}}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(assistantPickerModel).cancelled {
		t.Error("expected cancellation")
	}
}
