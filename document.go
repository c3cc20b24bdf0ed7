package jira2md

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-jira2md/internal/pipeline"
	"github.com/alnah/go-jira2md/internal/yamlutil"
)

// Frontmatter keys written for every ticket.
const (
	MetaTitle    = "Title"
	MetaStatus   = "Status"
	MetaLink     = "Link"
	MetaComments = "Comments"
)

// UnknownStatus is reported when the ticket header cannot be parsed.
const UnknownStatus = pipeline.UnknownStatus

const frontmatterDelimiter = "---"

// Document is a converted ticket.
type Document struct {
	Key      string
	Title    string
	Status   string
	Link     string         // Empty when the client printed no URL
	Body     string         // Converted description
	Comments string         // Converted comments; empty when not requested or none
	Extra    map[string]any // Frontmatter keys carried over from a previous file
}

// HasComments reports whether the document has a comments section.
func (d *Document) HasComments() bool {
	return d.Comments != ""
}

// Render returns the markdown file content: frontmatter, title heading, body
// and the optional comments section.
func (d *Document) Render() (string, error) {
	meta, err := yamlutil.MarshalOrdered(d.fields())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	var sb strings.Builder
	sb.WriteString(frontmatterDelimiter + "\n")
	sb.Write(meta)
	if !bytes.HasSuffix(meta, []byte("\n")) {
		sb.WriteString("\n")
	}
	sb.WriteString(frontmatterDelimiter + "\n\n")
	sb.WriteString(d.MarkdownBody())
	return sb.String(), nil
}

// MarkdownBody returns the content below the frontmatter.
func (d *Document) MarkdownBody() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# `%s`\n\n", d.Title)
	sb.WriteString(d.Body)
	sb.WriteString("\n")
	if d.HasComments() {
		sb.WriteString("\n## Comments\n\n")
		sb.WriteString(d.Comments)
		sb.WriteString("\n")
	}
	return sb.String()
}

// fields returns frontmatter entries in file order. Extra keys follow the
// managed ones, sorted.
func (d *Document) fields() []yamlutil.Field {
	fields := []yamlutil.Field{
		{Key: MetaTitle, Value: d.Title},
		{Key: MetaStatus, Value: d.Status},
	}
	if d.Link != "" {
		fields = append(fields, yamlutil.Field{Key: MetaLink, Value: d.Link})
	}
	if d.HasComments() {
		fields = append(fields, yamlutil.Field{Key: MetaComments, Value: true})
	}

	keys := make([]string, 0, len(d.Extra))
	for k := range d.Extra {
		if !isManagedKey(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		fields = append(fields, yamlutil.Field{Key: k, Value: d.Extra[k]})
	}
	return fields
}

// frontmatterFormat decodes "---" delimited frontmatter with the YAML
// library that renders it. Empty frontmatter decodes to nothing.
var frontmatterFormat = frontmatter.NewFormat(frontmatterDelimiter, frontmatterDelimiter,
	func(data []byte, v any) error {
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		return yamlutil.Unmarshal(data, v)
	})

// ParseFrontmatter reads the YAML frontmatter of a markdown file and returns
// it together with the remaining content. A file without frontmatter yields
// an empty map.
func ParseFrontmatter(r io.Reader) (map[string]any, string, error) {
	meta := map[string]any{}
	rest, err := frontmatter.Parse(r, &meta, frontmatterFormat)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}
	return meta, string(bytes.TrimLeft(rest, "\n")), nil
}

// ExtraMeta returns the frontmatter of r without the keys Render manages.
func ExtraMeta(r io.Reader) (map[string]any, error) {
	meta, _, err := ParseFrontmatter(r)
	if err != nil {
		return nil, err
	}
	for k := range meta {
		if isManagedKey(k) {
			delete(meta, k)
		}
	}
	return meta, nil
}

func isManagedKey(k string) bool {
	switch k {
	case MetaTitle, MetaStatus, MetaLink, MetaComments:
		return true
	}
	return false
}
