package application

import (
	"fmt"

	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/domain/assistant"
)

// ProfileStore persists assistant profiles and the active selection.
type ProfileStore interface {
	LoadAssistants() ([]assistant.Assistant, error)
	SaveAssistants(profiles []assistant.Assistant) error
	ActiveAssistantName() (string, error)
	SetActiveAssistantName(name string) error
}

type AssistantService struct {
	store ProfileStore
}

func NewAssistantService(store ProfileStore) *AssistantService {
	return &AssistantService{store: store}
}

// Profiles returns the configured assistant profiles, seeding the defaults
// on first use.
func (s *AssistantService) Profiles() ([]assistant.Assistant, error) {
	return s.store.LoadAssistants()
}

// Activate selects a profile by name. The profile must exist and be
// enabled.
func (s *AssistantService) Activate(name string) (*assistant.Assistant, error) {
	profiles, err := s.store.LoadAssistants()
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		if profile.Name != name {
			continue
		}
		if !profile.Enabled {
			return nil, fmt.Errorf("%s: %w", name, domain.ErrAssistantUnknown)
		}
		if err := s.store.SetActiveAssistantName(name); err != nil {
			return nil, err
		}
		selected := profile
		return &selected, nil
	}
	return nil, fmt.Errorf("%s: %w", name, domain.ErrAssistantUnknown)
}

// Deactivate clears the active selection, falling back to local rule-table
// processing.
func (s *AssistantService) Deactivate() error {
	return s.store.SetActiveAssistantName("")
}

// Active returns the selected profile, or nil when no profile is active or
// the selection is the local-processing profile.
func (s *AssistantService) Active() (*assistant.Assistant, error) {
	name, err := s.store.ActiveAssistantName()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}
	profiles, err := s.store.LoadAssistants()
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		if profile.Name == name && profile.Enabled {
			if profile.Type == assistant.TypeNone {
				return nil, nil
			}
			selected := profile
			return &selected, nil
		}
	}
	// a stale selection behaves like no selection
	return nil, nil
}

// Interpret maps a natural-language request onto a ward action. An active
// profile stamps its name on the intent; otherwise the local rule table
// answers as itself.
func (s *AssistantService) Interpret(input string) (assistant.Intent, error) {
	intent := assistant.Interpret(input)

	active, err := s.Active()
	if err != nil {
		return assistant.Intent{}, err
	}
	if active != nil {
		intent.Assistant = active.Name
		intent.Reasoning = fmt.Sprintf("Interpreted by %s (%s)", active.Name, active.Model)
	}
	return intent, nil
}
