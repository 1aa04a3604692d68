// Package assistant models the configured AI assistant profiles and the
// local keyword rule table that maps natural-language requests to ward
// actions. There is no model client here: interpretation is a pattern
// table, and "simulated" responses only reuse it with extra context rules.
package assistant

import "strings"

// Type identifies an assistant profile kind.
type Type string

const (
	TypeClaude  Type = "claude"
	TypeChatGPT Type = "chatgpt"
	TypeGemini  Type = "gemini"
	TypeCustom  Type = "custom"
	TypeNone    Type = "none"
)

// Assistant is one configured assistant profile.
type Assistant struct {
	Name         string  `json:"name"`
	Type         Type    `json:"type"`
	Model        string  `json:"model"`
	APIKey       string  `json:"api_key,omitempty"`
	APIEndpoint  string  `json:"api_endpoint,omitempty"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
	Enabled      bool    `json:"enabled"`
}

// Defaults returns the assistant profiles seeded on first use.
func Defaults() []Assistant {
	return []Assistant{
		{
			Name:         "Claude Sonnet",
			Type:         TypeClaude,
			Model:        "claude-3-sonnet-20241022",
			SystemPrompt: "You are a Ward assistant. Help users manage file protection, security policies, and AI assistant integration. Be helpful, clear, and security-focused.",
			Temperature:  0.3,
			MaxTokens:    1500,
			Enabled:      true,
		},
		{
			Name:         "ChatGPT-4",
			Type:         TypeChatGPT,
			Model:        "gpt-4",
			SystemPrompt: "You are a Ward assistant specializing in file system protection and security policy management.",
			Temperature:  0.5,
			MaxTokens:    1500,
			Enabled:      true,
		},
		{
			Name:         "Gemini Pro",
			Type:         TypeGemini,
			Model:        "gemini-pro",
			SystemPrompt: "You are a Ward assistant focused on protecting files and managing security policies.",
			Temperature:  0.4,
			MaxTokens:    1500,
			Enabled:      true,
		},
		{
			Name:         "None (Local Processing)",
			Type:         TypeNone,
			Model:        "local",
			SystemPrompt: "Local command processing without AI assistance.",
			Enabled:      true,
		},
	}
}

// Actions an interpreted request can map to.
const (
	ActionLock       = "lock"
	ActionUnlock     = "unlock"
	ActionPlant      = "plant"
	ActionAddComment = "add_comment"
	ActionStatus     = "status"
	ActionUnknown    = "unknown"
)

// LocalAssistant names the rule-table interpreter used when no assistant
// profile is active.
const LocalAssistant = "local"

// Intent is the interpreted outcome of a natural-language request.
type Intent struct {
	Action     string  `json:"action"`
	Message    string  `json:"message,omitempty"`
	Path       string  `json:"path"`
	Confidence float64 `json:"confidence"`
	Assistant  string  `json:"assistant"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// rule maps trigger keywords to an action with a fixed confidence. Keyword
// literals are bilingual (English and Korean) per the shipped rule table.
type rule struct {
	action     string
	confidence float64
	keywords   []string
}

// The unlock rule must precede the lock rule: matching is substring-based
// and "unlock"/"잠금해제" contain "lock"/"잠금".
var rules = []rule{
	{ActionUnlock, 0.8, []string{"풀어", "해제", "unlock", "열어", "잠금해제"}},
	{ActionLock, 0.8, []string{"잠가", "잠금", "lock", "잠그"}},
	{ActionPlant, 0.7, []string{"보호", "설치", "만들어", "plant", "seed"}},
	{ActionAddComment, 0.8, []string{"코멘트", "comment", "메모", "남겨"}},
	{ActionStatus, 0.9, []string{"상태", "status", "확인", "보여"}},
}

// Interpret matches input against the rule table. The first rule with any
// keyword hit wins; unmatched input reports ActionUnknown with near-zero
// confidence.
func Interpret(input string) Intent {
	lowered := strings.ToLower(input)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return Intent{
					Action:     r.action,
					Message:    input,
					Path:       ".",
					Confidence: r.confidence,
					Assistant:  LocalAssistant,
				}
			}
		}
	}

	return Intent{
		Action:     ActionUnknown,
		Message:    input,
		Path:       ".",
		Confidence: 0.1,
		Assistant:  LocalAssistant,
	}
}
