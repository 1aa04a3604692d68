// Package shell detects the user's shell environment and manages the
// prompt-activation scripts.
package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Profile describes one supported shell.
type Profile struct {
	Name            string
	ConfigFiles     []string
	PromptVar       string
	ActivationLines []string
	ThemeMarkers    []string
	Script          string
}

var profiles = map[string]Profile{
	"bash": {
		Name:        "bash",
		ConfigFiles: []string{"~/.bashrc", "~/.bash_profile", "~/.profile"},
		PromptVar:   "PS1",
		ActivationLines: []string{
			`export WARD_ORIGINAL_PS1="$PS1"`,
			`export PS1="[ward] $PS1"`,
		},
		ThemeMarkers: []string{"PS1=", `\[\033`, `\e[`},
		Script:       ".ward-activate.sh",
	},
	"zsh": {
		Name:        "zsh",
		ConfigFiles: []string{"~/.zshrc", "~/.zprofile", "~/.zshenv"},
		PromptVar:   "PROMPT",
		ActivationLines: []string{
			"autoload -U colors && colors",
			`export WARD_ORIGINAL_PROMPT="$PROMPT"`,
			`export PROMPT="%{$fg_bold[cyan]%}[ward]%{$reset_color%} $PROMPT"`,
		},
		ThemeMarkers: []string{"ZSH_THEME=", "agnoster", "powerlevel10k", "$PROMPT"},
		Script:       ".ward-activate.sh",
	},
	"fish": {
		Name:        "fish",
		ConfigFiles: []string{"~/.config/fish/config.fish", "~/.config/fish/functions/fish_prompt.fish"},
		PromptVar:   "fish_prompt",
		ActivationLines: []string{
			"function fish_prompt",
			`    echo -n "[ward] "`,
			"    __ward_original_prompt",
			"end",
		},
		ThemeMarkers: []string{"fish_prompt", "starship", "tide"},
		Script:       ".ward-activate.fish",
	},
	"ksh": {
		Name:        "ksh",
		ConfigFiles: []string{"~/.kshrc", "~/.profile"},
		PromptVar:   "PS1",
		ActivationLines: []string{
			`export WARD_ORIGINAL_PS1="$PS1"`,
			`export PS1="[ward] $PS1"`,
		},
		ThemeMarkers: []string{"PS1="},
		Script:       ".ward-activate.sh",
	},
	"csh": {
		Name:        "csh",
		ConfigFiles: []string{"~/.cshrc", "~/.login", "~/.tcshrc"},
		PromptVar:   "prompt",
		ActivationLines: []string{
			`setenv WARD_ORIGINAL_PROMPT "$prompt"`,
			`set prompt = "[ward] $prompt"`,
		},
		ThemeMarkers: []string{"set prompt"},
		Script:       ".ward-activate.csh",
	},
	"tcsh": {
		Name:        "tcsh",
		ConfigFiles: []string{"~/.tcshrc", "~/.cshrc", "~/.login"},
		PromptVar:   "prompt",
		ActivationLines: []string{
			`setenv WARD_ORIGINAL_PROMPT "$prompt"`,
			`set prompt = "[ward] $prompt"`,
		},
		ThemeMarkers: []string{"set prompt"},
		Script:       ".ward-activate.csh",
	},
}

// LookupProfile returns the profile for a shell name.
func LookupProfile(name string) (Profile, bool) {
	profile, ok := profiles[name]
	return profile, ok
}

// Names lists the supported shells in stable order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detector inspects the environment for the current shell and its theme.
// The environment accessors are injectable for tests.
type Detector struct {
	Home     string
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

func NewDetector() *Detector {
	home, _ := os.UserHomeDir()
	return &Detector{
		Home:     home,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
	}
}

// Current derives the shell from $SHELL, stripping version suffixes. Bash
// is the fallback when nothing matches.
func (d *Detector) Current() string {
	if env := d.Getenv("SHELL"); env != "" {
		name := filepath.Base(env)
		if _, ok := profiles[name]; ok {
			return name
		}
		base := strings.ReplaceAll(strings.Fields(name)[0], "-shell", "")
		if _, ok := profiles[base]; ok {
			return base
		}
	}
	return "bash"
}

// Available reports whether a shell binary is on PATH.
func (d *Detector) Available(name string) bool {
	_, err := d.LookPath(name)
	return err == nil
}

var zshThemeRe = regexp.MustCompile(`ZSH_THEME="([^"]+)"`)

// Theme detects the prompt framework for a shell: oh-my-zsh (with its
// configured theme), standalone powerlevel10k, or starship. Unknown shells
// report "unknown", undecorated ones "default".
func (d *Detector) Theme(name string) string {
	if _, ok := profiles[name]; !ok {
		return "unknown"
	}

	starship := filepath.Join(d.Home, ".config", "starship.toml")

	switch name {
	case "zsh":
		if _, err := os.Stat(filepath.Join(d.Home, ".oh-my-zsh")); err == nil {
			data, err := os.ReadFile(filepath.Join(d.Home, ".zshrc"))
			if err == nil {
				content := string(data)
				if m := zshThemeRe.FindStringSubmatch(content); m != nil {
					return "oh-my-zsh-" + m[1]
				}
				lowered := strings.ToLower(content)
				if strings.Contains(lowered, "agnoster") {
					return "oh-my-zsh-agnoster"
				}
				if strings.Contains(lowered, "powerlevel10k") {
					return "oh-my-zsh-powerlevel10k"
				}
			}
			return "oh-my-zsh"
		}
		if _, err := os.Stat(filepath.Join(d.Home, ".p10k.zsh")); err == nil {
			return "powerlevel10k"
		}
		if _, err := os.Stat(starship); err == nil {
			return "starship"
		}
	case "bash":
		if _, err := os.Stat(starship); err == nil {
			return "starship"
		}
	}
	return "default"
}

// Option is one selectable shell with its availability.
type Option struct {
	Name        string
	Available   bool
	Description string
}

// Options lists every supported shell, marking availability and the
// currently detected one.
func (d *Detector) Options() []Option {
	current := d.Current()
	options := make([]Option, 0, len(profiles))
	for _, name := range Names() {
		description := strings.ToUpper(name[:1]) + name[1:] + " shell"
		if name == current {
			description += " (current)"
		}
		options = append(options, Option{
			Name:        name,
			Available:   d.Available(name),
			Description: description,
		})
	}
	return options
}
