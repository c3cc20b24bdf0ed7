package jira2md

import (
	"fmt"
	"regexp"
)

// keyPattern matches Jira issue keys such as PROJ-123.
var keyPattern = regexp.MustCompile(`^[A-Z]+-[0-9]+$`)

// ValidateKey checks that key looks like a Jira issue key (PROJ-123).
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w '%s'. Expected format: PROJ-123", ErrInvalidKey, key)
	}
	return nil
}
