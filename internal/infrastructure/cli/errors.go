package cli

import (
	"errors"
	"fmt"

	"github.com/wardsec/ward/internal/domain"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotWarded):
		return NewCLIError("directory is not ward-protected", "Run 'ward plant' or 'ward init' first", err)
	case errors.Is(err, domain.ErrWardExists):
		return NewCLIError("ward already exists", "Inspect it with 'ward info'; remove the .ward file manually to replace it", err)
	case errors.Is(err, domain.ErrPathMissing):
		return NewCLIError("path does not exist", "Check the path or create the directory first", err)
	case errors.Is(err, domain.ErrNotDirectory):
		return NewCLIError("path is not a directory", "Wards protect directories; point at the containing folder", err)
	case errors.Is(err, domain.ErrNotFavorite):
		return NewCLIError("path is not in favorites", "Add it with 'ward favorites add' first", err)
	case errors.Is(err, domain.ErrIncompletePolicy):
		return NewCLIError("incomplete policy", "The .ward file needs both @whitelist and @blacklist directives", err)
	case errors.Is(err, domain.ErrAssistantUnknown):
		return NewCLIError("assistant not available", "Run 'ward assistant list' to see configured profiles", err)
	}

	return err
}
