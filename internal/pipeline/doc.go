// Package pipeline implements the text stages that turn the jira CLI's plain
// rendering of a ticket into Markdown.
//
// The stages are small, stateless functions applied in order:
//   - Line cleanup: ANSI escape stripping and whitespace trimming (StripANSI)
//   - Metadata extraction: title, status and ticket link (Extract*)
//   - Section extraction: description and comments between named separators
//   - Paragraph joining: re-flowing soft-wrapped prose while keeping headings,
//     lists, tables and code fences structural (JoinParagraphs)
//   - Markup translation: leftover Jira wiki markup to Markdown (JiraToMarkdown)
//
// An optional preview stage renders the resulting Markdown to HTML via Goldmark.
// Fetching the ticket and writing files live outside this package.
package pipeline
