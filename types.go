package jira2md

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultTimeout bounds the jira client invocation when no timeout is set.
const DefaultTimeout = 30 * time.Second

// Fetcher returns the plain rendering of a ticket.
// comments is nil when comments are not requested.
type Fetcher interface {
	Fetch(ctx context.Context, key string, comments *int) (string, error)
}

// Request contains conversion parameters.
type Request struct {
	Key      string    // Ticket key, e.g. "PROJ-123" (required)
	Comments *int      // Comments to request; nil = comments not requested
	Previous io.Reader // Existing markdown file whose extra frontmatter is kept (optional)
}

// Validate checks the key format and comment count.
func (r Request) Validate() error {
	if err := ValidateKey(r.Key); err != nil {
		return err
	}
	if r.Comments != nil && *r.Comments < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, *r.Comments)
	}
	return nil
}

// WithComments reports whether comments were requested.
func (r Request) WithComments() bool {
	return r.Comments != nil
}

// Result is the outcome of a conversion.
type Result struct {
	Document *Document
	Markdown string // Rendered file content
	HTML     string // Standalone preview; empty unless WithPreview is set
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	preview bool
}

// WithClient sets the source of plain renderings.
// Defaults to the jira binary found on PATH.
func WithClient(f Fetcher) Option {
	return func(s *Service) {
		s.fetcher = f
	}
}

// WithTimeout sets the fetch timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("jira2md: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithLogger sets the logger for debug diagnostics. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		s.logger = l
	}
}

// WithPreview renders an HTML preview alongside the markdown.
func WithPreview() Option {
	return func(s *Service) {
		s.cfg.preview = true
	}
}
