// Package application implements the use-case services behind the ward CLI
// and MCP server. Services hold repositories only; all filesystem layout
// knowledge lives in the infrastructure layer.
package application

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/domain/ward"
)

// Defaults written into a freshly planted ward.
var (
	defaultWhitelist = []string{"ls", "cat", "pwd", "echo", "grep"}
	defaultBlacklist = []string{"rm -rf", "sudo", "su", "chmod", "chown"}
)

// Starter policy written by Init for a new project directory.
var (
	starterWhitelist     = []string{"ls", "cat", "pwd", "echo", "grep", "sed", "awk", "git", "python", "npm", "node", "code", "vim"}
	starterBlacklist     = []string{"rm -rf /", "sudo", "su", "chmod", "chown", "docker", "kubectl"}
	starterCommentPrompt = "Explain changes from a security perspective"
)

const defaultDescription = "Ward Security Policy"

type WardService struct {
	repo  domain.WardRepository
	vault domain.PasswordVault
}

func NewWardService(repo domain.WardRepository, vault domain.PasswordVault) *WardService {
	return &WardService{repo: repo, vault: vault}
}

// PlantResult reports where a new ward landed and where its password token
// was recorded.
type PlantResult struct {
	Path         string `json:"path"`
	WardFile     string `json:"ward_file"`
	PasswordFile string `json:"password_file"`
}

// WardInfo is the full protection report for a directory.
type WardInfo struct {
	Protected         bool   `json:"protected"`
	PasswordProtected bool   `json:"password_protected"`
	PasswordFile      string `json:"password_file,omitempty"`
	WardFile          string `json:"ward_file,omitempty"`
	Content           string `json:"content,omitempty"`
	Readable          bool   `json:"readable"`
}

// StatusReport is the short per-directory status line.
type StatusReport struct {
	Path             string   `json:"path"`
	Warded           bool     `json:"warded"`
	Description      string   `json:"description,omitempty"`
	GateState        string   `json:"gate_state"`
	ProtectedFolders []string `json:"protected_folders,omitempty"`
}

// resolveDir canonicalizes path and confirms it names an existing directory.
func resolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", abs, domain.ErrPathMissing)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, domain.ErrNotDirectory)
	}
	return abs, nil
}

func generateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Plant creates a password-protected ward in an existing directory. The
// token is recorded before the marker file is written and removed again if
// the write fails, so the vault never points at a ward that does not exist.
func (s *WardService) Plant(path, description string, aiInitiated bool) (*PlantResult, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}
	if s.repo.HasWard(dir) {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrWardExists)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	if err := s.vault.SetPassword(dir, token); err != nil {
		return nil, fmt.Errorf("record password: %w", err)
	}

	if description == "" {
		description = defaultDescription
	}
	cfg := ward.NewConfig()
	cfg.Description = description
	cfg.AIInitiated = aiInitiated
	cfg.PasswordProtected = true
	cfg.Whitelist = defaultWhitelist
	cfg.Blacklist = defaultBlacklist
	cfg.AINotes = fmt.Sprintf(
		"This Ward is password-protected. To modify or remove, manually edit the password file at %s",
		s.vault.VaultPath(),
	)

	if err := s.repo.SaveConfig(dir, cfg); err != nil {
		// the vault entry must not outlive a failed plant
		_ = s.vault.RemovePassword(dir)
		return nil, err
	}

	return &PlantResult{
		Path:         dir,
		WardFile:     s.repo.WardPath(dir),
		PasswordFile: s.vault.VaultPath(),
	}, nil
}

// Init creates the directory if needed and writes a starter development
// policy. Unlike Plant it records no password.
func (s *WardService) Init(path, description string) (*PlantResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := os.MkdirAll(abs, 0700); err != nil {
		return nil, fmt.Errorf("create %s: %w", abs, err)
	}
	if s.repo.HasWard(abs) {
		return nil, fmt.Errorf("%s: %w", abs, domain.ErrWardExists)
	}

	if description == "" {
		description = "AI-Assisted Development Project"
	}
	cfg := ward.NewConfig()
	cfg.Description = description
	cfg.Whitelist = starterWhitelist
	cfg.Blacklist = starterBlacklist
	cfg.AllowComments = true
	cfg.MaxComments = ward.DefaultMaxComments
	cfg.CommentPrompt = starterCommentPrompt

	if err := s.repo.SaveConfig(abs, cfg); err != nil {
		return nil, err
	}
	return &PlantResult{Path: abs, WardFile: s.repo.WardPath(abs)}, nil
}

// Info reports a directory's protection state. A marker that exists but
// cannot be read still counts as protected, with Readable false.
func (s *WardService) Info(path string) (*WardInfo, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}
	if !s.repo.HasWard(dir) {
		return &WardInfo{Protected: false}, nil
	}

	info := &WardInfo{
		Protected: true,
		WardFile:  s.repo.WardPath(dir),
	}
	if _, ok := s.vault.Password(dir); ok {
		info.PasswordProtected = true
		info.PasswordFile = s.vault.VaultPath()
	}

	content, err := s.repo.ReadPolicy(dir)
	if err != nil {
		info.Readable = false
		return info, nil
	}
	info.Readable = true
	info.Content = content
	return info, nil
}

// Lock moves a directory's gate to locked. An unwarded directory gets a
// fresh ward planted in the locked state; locking an already locked ward is
// an error rather than a silent replant.
func (s *WardService) Lock(path, message string) (*StatusReport, error) {
	return s.transitionGate(path, ward.EventLock, message)
}

// Unlock moves a directory's gate back to open.
func (s *WardService) Unlock(path, message string) (*StatusReport, error) {
	return s.transitionGate(path, ward.EventUnlock, message)
}

func (s *WardService) transitionGate(path, event, message string) (*StatusReport, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}

	cfg := s.repo.LoadConfig(dir)
	if cfg == nil {
		if event == ward.EventUnlock {
			return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotWarded)
		}
		// plant-on-lock: an unwarded directory can be locked directly
		if _, err := s.Plant(dir, ward.LockDescription(message), false); err != nil {
			return nil, err
		}
		return s.Status(dir)
	}

	machine, err := ward.NewGateMachine(ward.GateState(cfg), dir)
	if err != nil {
		return nil, err
	}
	if err := machine.Transition(event); err != nil {
		return nil, err
	}

	switch event {
	case ward.EventLock:
		cfg.Description = ward.LockDescription(message)
	case ward.EventUnlock:
		cfg.Description = ward.UnlockDescription(message)
	}
	if err := s.repo.SaveConfig(dir, *cfg); err != nil {
		return nil, err
	}
	return s.Status(dir)
}

// Protect appends folder names to the ward's protected list, skipping
// duplicates.
func (s *WardService) Protect(path string, folders ...string) (*StatusReport, error) {
	return s.editProtected(path, func(current []string) []string {
		for _, f := range folders {
			f = strings.TrimSpace(f)
			if f == "" || slices.Contains(current, f) {
				continue
			}
			current = append(current, f)
		}
		return current
	})
}

// Unprotect removes folder names from the ward's protected list.
func (s *WardService) Unprotect(path string, folders ...string) (*StatusReport, error) {
	return s.editProtected(path, func(current []string) []string {
		kept := current[:0]
		for _, c := range current {
			if !slices.Contains(folders, c) {
				kept = append(kept, c)
			}
		}
		return kept
	})
}

func (s *WardService) editProtected(path string, edit func([]string) []string) (*StatusReport, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}
	cfg := s.repo.LoadConfig(dir)
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotWarded)
	}
	cfg.ProtectedFolders = edit(cfg.ProtectedFolders)
	if err := s.repo.SaveConfig(dir, *cfg); err != nil {
		return nil, err
	}
	return s.Status(dir)
}

// Check reports whether target falls under any protected folder of the ward
// rooted at path.
func (s *WardService) Check(path, target string) (*ward.ProtectionInfo, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}
	cfg := s.repo.LoadConfig(dir)
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotWarded)
	}
	protector := ward.NewFolderProtector(dir, cfg.ProtectedFolders)
	info := protector.ProtectionInfo(target)
	return &info, nil
}

// Validate runs the structural policy check: both a whitelist and a
// blacklist section must be present.
func (s *WardService) Validate(path string) error {
	dir, err := resolveDir(path)
	if err != nil {
		return err
	}
	cfg := s.repo.LoadConfig(dir)
	if cfg == nil {
		return fmt.Errorf("%s: %w", dir, domain.ErrNotWarded)
	}
	if len(cfg.Whitelist) == 0 || len(cfg.Blacklist) == 0 {
		return fmt.Errorf("%s: %w", dir, domain.ErrIncompletePolicy)
	}
	return nil
}

// Status summarizes a directory's ward in one report.
func (s *WardService) Status(path string) (*StatusReport, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}
	cfg := s.repo.LoadConfig(dir)
	report := &StatusReport{
		Path:      dir,
		GateState: ward.GateState(cfg),
	}
	if cfg == nil {
		return report, nil
	}
	report.Warded = true
	report.Description = cfg.Description
	report.ProtectedFolders = cfg.ProtectedFolders
	return report, nil
}

// Protector builds the folder protector for a warded directory, for callers
// that classify many paths against one policy.
func (s *WardService) Protector(path string) (*ward.FolderProtector, error) {
	dir, err := resolveDir(path)
	if err != nil {
		return nil, err
	}
	cfg := s.repo.LoadConfig(dir)
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrNotWarded)
	}
	return ward.NewFolderProtector(dir, cfg.ProtectedFolders), nil
}
