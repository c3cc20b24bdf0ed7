package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// PreviewStyle is the Chroma style used for code blocks in the preview.
const PreviewStyle = "github"

// previewTemplate wraps Goldmark's fragment output in a complete HTML5 document.
// Arguments: title, stylesheet, body.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 50rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.5; }
blockquote { margin-left: 0; padding-left: 1rem; border-left: 4px solid #ddd; color: #555; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 0.25rem 0.5rem; }
pre { padding: 0.75rem; overflow-x: auto; }
%s</style>
</head>
<body>
%s
</body>
</html>`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// PreviewRenderer converts Markdown to a standalone HTML page using goldmark.
type PreviewRenderer struct {
	md goldmark.Markdown
}

// NewPreviewRenderer creates a PreviewRenderer with GFM extensions and syntax highlighting.
func NewPreviewRenderer() *PreviewRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(PreviewStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // classes resolved by the embedded stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
			// WithUnsafe() is not used: ticket text may contain raw HTML.
		),
	)
	return &PreviewRenderer{md: md}
}

// ToHTML converts Markdown content to a standalone HTML5 document titled title.
func (r *PreviewRenderer) ToHTML(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := r.md.Convert([]byte(content), &body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	css, err := highlightCSS()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	return fmt.Sprintf(previewTemplate, html.EscapeString(title), css, body.String()), nil
}

// highlightCSS returns the stylesheet for Chroma's highlight classes.
func highlightCSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(PreviewStyle)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
