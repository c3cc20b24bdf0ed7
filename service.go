package jira2md

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alnah/go-jira2md/internal/fetch"
	"github.com/alnah/go-jira2md/internal/pipeline"
)

// Service orchestrates fetching and converting tickets.
type Service struct {
	cfg     serviceConfig
	fetcher Fetcher
	preview pipeline.HTMLConverter
	logger  *slog.Logger
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    serviceConfig{timeout: DefaultTimeout},
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.fetcher == nil {
		s.fetcher = fetch.NewClient(fetch.DefaultBinary)
	}
	// Create the preview renderer only when needed (tests may inject one).
	if s.cfg.preview && s.preview == nil {
		s.preview = pipeline.NewPreviewRenderer()
	}

	return s
}

// Convert fetches the ticket and returns the rendered document.
// The context is used for cancellation; the fetch is additionally bounded by
// the service timeout.
func (s *Service) Convert(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	doc := ConvertText(req.Key, raw, req.WithComments())
	s.logger.Debug("converted ticket",
		"key", doc.Key,
		"status", doc.Status,
		"body_bytes", len(doc.Body),
		"comments_bytes", len(doc.Comments))

	if req.Previous != nil {
		extra, err := ExtraMeta(req.Previous)
		if err != nil {
			s.logger.Warn("ignoring existing frontmatter", "key", req.Key, "error", err)
		} else if len(extra) > 0 {
			doc.Extra = extra
			s.logger.Debug("kept existing frontmatter", "keys", len(extra))
		}
	}

	md, err := doc.Render()
	if err != nil {
		return nil, err
	}
	result := &Result{Document: doc, Markdown: md}

	if s.preview != nil {
		html, err := s.preview.ToHTML(ctx, doc.Key+": "+doc.Title, doc.MarkdownBody())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreview, err)
		}
		result.HTML = html
	}

	return result, nil
}

// fetch runs the client under the service timeout.
func (s *Service) fetch(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.fetcher.Fetch(ctx, req.Key, req.Comments)
	if err != nil {
		return "", err
	}
	s.logger.Debug("fetched ticket",
		"key", req.Key,
		"bytes", len(raw),
		"duration", time.Since(start).Round(time.Millisecond))
	return raw, nil
}

// ConvertText runs the text pipeline on a plain rendering.
// The comments section is converted only when withComments is set.
func ConvertText(key, raw string, withComments bool) *Document {
	lines := pipeline.StripANSI(raw)

	doc := &Document{
		Key:    key,
		Title:  pipeline.ExtractTitle(lines, key),
		Status: pipeline.ExtractStatus(lines),
		Link:   pipeline.ExtractLink(lines),
		Body:   convertSection(pipeline.ExtractDescription(lines)),
	}
	if withComments {
		doc.Comments = convertSection(pipeline.ExtractComments(lines))
	}
	return doc
}

func convertSection(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return pipeline.JiraToMarkdown(pipeline.JoinParagraphs(lines))
}
