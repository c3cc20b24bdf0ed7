package jira2md

import (
	"errors"

	"github.com/alnah/go-jira2md/internal/fetch"
)

// Sentinel errors for library operations.
var (
	ErrInvalidKey    = errors.New("invalid ticket key")
	ErrRender        = errors.New("markdown rendering failed")
	ErrPreview       = errors.New("HTML preview failed")
	ErrNegativeCount = errors.New("comment count cannot be negative")
	ErrFrontmatter   = errors.New("failed to parse frontmatter")
)

// Client errors, re-exported so callers do not need the internal package.
var (
	ErrClientNotFound = fetch.ErrClientNotFound
	ErrFetchFailed    = fetch.ErrFetchFailed
	ErrFetchTimeout   = fetch.ErrFetchTimeout
)
