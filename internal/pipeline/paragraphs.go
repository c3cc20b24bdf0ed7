package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled patterns for paragraph joining.
var (
	// Lines that always stand alone: ATX headings, fences, separators.
	standalonePattern = regexp.MustCompile("^(#{1,6}\\s|```|-{3,})")

	// Table rows: a pipe between two cells, or a leading pipe.
	tableRowPattern          = regexp.MustCompile(`^.+\|.+$`)
	tableContinuationPattern = regexp.MustCompile(`^\|`)

	// Lines that start a new block but may continue on following lines:
	// bullets (including the client's "•"), ordered items, blockquotes.
	blockStartPattern = regexp.MustCompile(`^([•\-*+]\s|\d+\.\s|>)`)

	// Fence delimiters: Markdown fences at line start, Jira code macros at
	// either edge of the line.
	markdownFencePattern = regexp.MustCompile("^(```|~~~)")
	jiraFencePattern     = regexp.MustCompile(`\{code(:[^}]*)?\}|\{noformat\}`)
)

// JoinParagraphs joins soft-wrapped lines into paragraphs.
//
// The jira CLI wraps text at the terminal width. Consecutive prose lines are
// joined with a single space; blank lines, headings, separators and table rows
// are kept on their own line; list items and blockquotes start a new paragraph
// and absorb their own continuation lines. Lines inside code fences are kept
// verbatim.
func JoinParagraphs(lines []string) string {
	result := make([]string, 0, len(lines))
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			result = append(result, strings.Join(buf, " "))
			buf = buf[:0]
		}
	}

	inCodeBlock := false

	for _, line := range lines {
		if isFenceDelimiter(line) {
			flush()
			result = append(result, line)
			inCodeBlock = !inCodeBlock
			continue
		}

		switch {
		case inCodeBlock:
			result = append(result, line)
		case isBlankLine(line):
			flush()
			result = append(result, "")
		case isStandalone(line):
			flush()
			result = append(result, line)
		case blockStartPattern.MatchString(line):
			flush()
			buf = append(buf, line)
		default:
			buf = append(buf, line)
		}
	}

	flush()
	return strings.Join(result, "\n")
}

// isStandalone reports whether line must never be merged with its neighbours.
// Pipes inside [text|url] links do not make a line a table row.
func isStandalone(line string) bool {
	if standalonePattern.MatchString(line) || tableContinuationPattern.MatchString(line) {
		return true
	}
	return tableRowPattern.MatchString(wikiLinkPattern.ReplaceAllString(line, "$1"))
}

// isFenceDelimiter reports whether line opens or closes a code block.
// A Jira macro counts only when it starts or ends the line, so prose that
// mentions {code} keeps merging. A line holding a complete {code}...{code}
// pair does not change state.
func isFenceDelimiter(line string) bool {
	if markdownFencePattern.MatchString(line) {
		return true
	}
	macros := jiraFencePattern.FindAllStringIndex(line, -1)
	if len(macros)%2 == 0 {
		return false
	}
	return macros[0][0] == 0 || macros[len(macros)-1][1] == len(line)
}
