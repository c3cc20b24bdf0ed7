// Package jira2md converts a Jira ticket into a Markdown document with YAML frontmatter.
//
// # Quick Start
//
// Create a service and convert a ticket:
//
//	svc := jira2md.New()
//
//	result, err := svc.Convert(ctx, jira2md.Request{Key: "PROJ-123"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("PROJ-123.md", []byte(result.Markdown), 0644)
//
// The ticket is fetched with the jira CLI (https://github.com/ankitpokhrel/jira-cli)
// using `jira issue view KEY --plain`, so the client must be installed and
// configured (`jira init`).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Fetch the plain rendering of the ticket from the jira CLI
//  2. Strip ANSI escape codes and trim every line
//  3. Extract title, status and ticket link
//  4. Cut the description (and comments) sections out of the output
//  5. Re-join wrapped lines into paragraphs, keeping headings, lists, tables and code
//  6. Translate leftover Jira wiki markup ({{code}}, {note}, [text|url], ...) to Markdown
//  7. Render YAML frontmatter followed by the body
//
// Stages 2 to 7 are pure and available without a client through ConvertText.
//
// # Comments
//
// Request.Comments asks the client for the N most recent comments. They are
// appended under a "## Comments" heading and the frontmatter gets "Comments: true":
//
//	n := 5
//	result, err := svc.Convert(ctx, jira2md.Request{Key: "PROJ-123", Comments: &n})
//
// # HTML Preview
//
// WithPreview renders the Markdown body to a standalone HTML page (Goldmark with
// Chroma syntax highlighting) and returns it in Result.HTML.
package jira2md
