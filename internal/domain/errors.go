// Package domain holds the shared document types, sentinel errors, and
// repository contracts used across the application services.
package domain

import "errors"

var (
	// ErrNotWarded is returned when an operation requires a .ward marker
	// that the directory does not have.
	ErrNotWarded = errors.New("directory is not ward-protected")

	// ErrWardExists is returned when planting over an existing ward.
	ErrWardExists = errors.New("ward already exists in this directory")

	// ErrPathMissing is returned when the target path does not exist.
	ErrPathMissing = errors.New("path does not exist")

	// ErrNotDirectory is returned when the target path is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrNotFavorite is returned when commenting on a path that was never
	// added to favorites.
	ErrNotFavorite = errors.New("path not in favorites")

	// ErrIncompletePolicy is returned by validation when a policy lacks a
	// whitelist or blacklist section.
	ErrIncompletePolicy = errors.New("incomplete policy: missing whitelist or blacklist")

	// ErrAssistantUnknown is returned when activating an assistant profile
	// that is not configured or not enabled.
	ErrAssistantUnknown = errors.New("assistant not configured or disabled")
)
