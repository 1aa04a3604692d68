// Package ward holds the core domain model: the .ward directive file format
// and the folder protection rules derived from it.
package ward

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MarkerFile is the conventional name of the directive file that marks a
// directory as warded.
const MarkerFile = ".ward"

// DefaultMaxComments is the fallback used when @max_comments is absent or
// not a valid integer.
const DefaultMaxComments = 5

// Config represents the parsed content of one .ward file.
type Config struct {
	Description       string   `json:"description"`
	Created           string   `json:"created,omitempty"`
	AIInitiated       bool     `json:"ai_initiated"`
	PasswordProtected bool     `json:"password_protected"`
	Whitelist         []string `json:"whitelist,omitempty"`
	Blacklist         []string `json:"blacklist,omitempty"`
	AIGuidance        bool     `json:"ai_guidance"`
	ProtectedFolders  []string `json:"protected_folders,omitempty"`
	Shell             string   `json:"shell,omitempty"`
	Theme             string   `json:"theme,omitempty"`
	AllowComments     bool     `json:"allow_comments"`
	MaxComments       int      `json:"max_comments"`
	CommentPrompt     string   `json:"comment_prompt,omitempty"`
	AINotes           string   `json:"ai_notes,omitempty"`
}

// NewConfig returns a Config with field defaults applied.
func NewConfig() Config {
	return Config{
		AIGuidance:  true,
		MaxComments: DefaultMaxComments,
	}
}

// parseBool matches the literal directive tokens true/yes/1, case
// insensitively. Any other token, including the empty string, is false.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// parseFolders splits a comma separated folder list, trimming each entry.
// An empty value yields no entries, never a single empty string.
func parseFolders(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	var folders []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			folders = append(folders, part)
		}
	}
	return folders
}

// Parse reads .ward directive content into a Config. Each line is matched by
// its @key: prefix; blank lines and # comments are skipped, unknown keys are
// ignored for forward compatibility. Parse never fails: malformed boolean or
// integer tokens degrade to the field default.
func Parse(content string) Config {
	cfg := Config{MaxComments: DefaultMaxComments}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok || !strings.HasPrefix(key, "@") {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "@description":
			cfg.Description = value
		case "@created":
			cfg.Created = value
		case "@ai_initiated":
			cfg.AIInitiated = parseBool(value)
		case "@password_protected":
			cfg.PasswordProtected = parseBool(value)
		case "@whitelist":
			cfg.Whitelist = strings.Fields(value)
		case "@blacklist":
			cfg.Blacklist = strings.Fields(value)
		case "@ai_guidance":
			cfg.AIGuidance = parseBool(value)
		case "@protected_folders":
			cfg.ProtectedFolders = parseFolders(value)
		case "@shell":
			cfg.Shell = value
		case "@theme":
			cfg.Theme = value
		case "@allow_comments":
			cfg.AllowComments = parseBool(value)
		case "@max_comments":
			if n, err := strconv.Atoi(value); err == nil {
				cfg.MaxComments = n
			} else {
				cfg.MaxComments = DefaultMaxComments
			}
		case "@comment_prompt":
			cfg.CommentPrompt = value
		case "@ai_notes":
			cfg.AINotes = value
		}
	}

	return cfg
}

// ParseFile reads and parses the .ward file at path. It returns nil on any
// read or decode error; callers treat nil as "no usable configuration".
func ParseFile(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	cfg := Parse(string(data))
	return &cfg
}

// Generate produces canonical .ward text from a Config. Directive order is
// fixed; string directives are omitted when empty while boolean directives
// and max_comments are always written. A missing Created value is replaced
// with the current timestamp, so round-tripping a config without Created is
// not value stable.
func Generate(cfg Config) string {
	var lines []string

	if cfg.Description != "" {
		lines = append(lines, fmt.Sprintf("@description: %s", cfg.Description))
	}
	created := cfg.Created
	if created == "" {
		created = time.Now().Format(time.RFC3339)
	}
	lines = append(lines, fmt.Sprintf("@created: %s", created))
	lines = append(lines, fmt.Sprintf("@ai_initiated: %t", cfg.AIInitiated))
	lines = append(lines, fmt.Sprintf("@password_protected: %t", cfg.PasswordProtected))
	lines = append(lines, "")

	if len(cfg.Whitelist) > 0 {
		lines = append(lines, fmt.Sprintf("@whitelist: %s", strings.Join(cfg.Whitelist, " ")))
	}
	if len(cfg.Blacklist) > 0 {
		lines = append(lines, fmt.Sprintf("@blacklist: %s", strings.Join(cfg.Blacklist, " ")))
	}
	lines = append(lines, fmt.Sprintf("@ai_guidance: %t", cfg.AIGuidance))
	lines = append(lines, "")

	if len(cfg.ProtectedFolders) > 0 {
		lines = append(lines, fmt.Sprintf("@protected_folders: %s", strings.Join(cfg.ProtectedFolders, ",")))
		lines = append(lines, "")
	}

	if cfg.Shell != "" {
		lines = append(lines, fmt.Sprintf("@shell: %s", cfg.Shell))
	}
	if cfg.Theme != "" {
		lines = append(lines, fmt.Sprintf("@theme: %s", cfg.Theme))
	}

	lines = append(lines, fmt.Sprintf("@allow_comments: %t", cfg.AllowComments))
	lines = append(lines, fmt.Sprintf("@max_comments: %d", cfg.MaxComments))
	if cfg.CommentPrompt != "" {
		lines = append(lines, fmt.Sprintf("@comment_prompt: %s", cfg.CommentPrompt))
	}

	if cfg.AINotes != "" {
		lines = append(lines, "")
		lines = append(lines, "# AI Operations Guidance")
		lines = append(lines, fmt.Sprintf("@ai_notes: %s", cfg.AINotes))
	}

	return strings.Join(lines, "\n")
}
