package core

import (
	"errors"
	"regexp"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks if an error is a "not found" error
// This function handles both the ErrNotFound sentinel error and string-based
// errors coming back from the CRUD layer
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	// Check for the sentinel error
	if errors.Is(err, ErrNotFound) {
		return true
	}
	// Check for string-based errors from the repository layer
	return containsNotFound(err.Error())
}

// containsNotFound checks if an error message contains "not found"
func containsNotFound(errMsg string) bool {
	// Use case-insensitive matching for various "not found" formats
	return len(errMsg) > 0 && (regexp.MustCompile(`(?i)not found`).MatchString(errMsg))
}
