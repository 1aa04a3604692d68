package application_test

import (
	"errors"
	"testing"

	"github.com/wardsec/ward/internal/application"
	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/domain/assistant"
)

func TestAssistantService_Profiles(t *testing.T) {
	service := application.NewAssistantService(&MockProfiles{})

	profiles, err := service.Profiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 4 {
		t.Fatalf("expected 4 default profiles, got %d", len(profiles))
	}
}

func TestAssistantService_Activate(t *testing.T) {
	store := &MockProfiles{}
	service := application.NewAssistantService(store)

	profile, err := service.Activate("Claude Sonnet")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Type != assistant.TypeClaude {
		t.Errorf("unexpected profile %+v", profile)
	}
	if store.ActiveName != "Claude Sonnet" {
		t.Errorf("selection not persisted, got %q", store.ActiveName)
	}

	if _, err := service.Activate("No Such Assistant"); !errors.Is(err, domain.ErrAssistantUnknown) {
		t.Errorf("expected ErrAssistantUnknown, got %v", err)
	}
}

func TestAssistantService_Activate_Disabled(t *testing.T) {
	store := &MockProfiles{Assistants: []assistant.Assistant{
		{Name: "Disabled", Type: assistant.TypeCustom, Enabled: false},
	}}
	service := application.NewAssistantService(store)

	if _, err := service.Activate("Disabled"); !errors.Is(err, domain.ErrAssistantUnknown) {
		t.Errorf("expected ErrAssistantUnknown, got %v", err)
	}
}

func TestAssistantService_Active(t *testing.T) {
	store := &MockProfiles{}
	service := application.NewAssistantService(store)

	active, err := service.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Errorf("expected no active profile, got %+v", active)
	}

	// the local-processing profile behaves like no selection
	store.ActiveName = "None (Local Processing)"
	active, err = service.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Errorf("none profile should not be active, got %+v", active)
	}

	// a stale selection behaves like no selection
	store.ActiveName = "Removed Profile"
	active, err = service.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Errorf("stale selection should not be active, got %+v", active)
	}
}

func TestAssistantService_Interpret(t *testing.T) {
	store := &MockProfiles{}
	service := application.NewAssistantService(store)

	intent, err := service.Interpret("please lock this directory")
	if err != nil {
		t.Fatal(err)
	}
	if intent.Action != assistant.ActionLock {
		t.Errorf("expected lock action, got %s", intent.Action)
	}
	if intent.Assistant != assistant.LocalAssistant {
		t.Errorf("expected local assistant, got %s", intent.Assistant)
	}

	if _, err := service.Activate("Gemini Pro"); err != nil {
		t.Fatal(err)
	}
	intent, err = service.Interpret("상태 확인")
	if err != nil {
		t.Fatal(err)
	}
	if intent.Action != assistant.ActionStatus {
		t.Errorf("expected status action, got %s", intent.Action)
	}
	if intent.Assistant != "Gemini Pro" {
		t.Errorf("expected active assistant stamp, got %s", intent.Assistant)
	}
	if intent.Reasoning == "" {
		t.Error("expected reasoning from active profile")
	}
}

func TestAssistantService_Deactivate(t *testing.T) {
	store := &MockProfiles{ActiveName: "Claude Sonnet"}
	service := application.NewAssistantService(store)

	if err := service.Deactivate(); err != nil {
		t.Fatal(err)
	}
	if store.ActiveName != "" {
		t.Errorf("expected cleared selection, got %q", store.ActiveName)
	}
}
