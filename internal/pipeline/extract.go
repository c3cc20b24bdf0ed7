package pipeline

import (
	"regexp"
	"strings"
)

// UnknownStatus is reported when the status cannot be parsed from the header.
const UnknownStatus = "Unknown"

// Section patterns in the jira CLI plain rendering.
var (
	// Any named separator, e.g. "------------ Description ------------".
	sectionSeparatorPattern = regexp.MustCompile(`^-{10,}.*[A-Za-z].*-{10,}$`)

	DescriptionStartPattern = regexp.MustCompile(`^-{10,}.*[Dd]escription.*-{10,}$`)
	CommentsStartPattern    = regexp.MustCompile(`^-{10,}.*[Cc]omment.*-{10,}$`)

	// Hint the client prints when more comments exist than were requested.
	CommentsSkipPattern = regexp.MustCompile(`^Use --comments`)

	footerPattern = regexp.MustCompile(`^View this issue on Jira:`)
)

// Metadata patterns.
var (
	// Header line: "🐞 Bug  🚧 In Progress  ⌛ Mon, 01 Jan 24 ..." -> "In Progress".
	statusPattern = regexp.MustCompile(`\s{2}\S+\s+(.+?)\s{2,}\x{231B}`)

	linkPattern = regexp.MustCompile(`https://\S+`)
)

// ExtractTitle returns the text of the first "# " heading, or fallback.
func ExtractTitle(lines []string, fallback string) string {
	for _, line := range lines {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return title
		}
	}
	return fallback
}

// ExtractLink returns the first URL of the last line containing one,
// which is the ticket link in the client's footer. Empty if none.
func ExtractLink(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if link := linkPattern.FindString(lines[i]); link != "" {
			return link
		}
	}
	return ""
}

// ExtractStatus parses the status from the first non-blank line (the
// metadata header). Returns UnknownStatus when the header does not match.
func ExtractStatus(lines []string) string {
	for _, line := range lines {
		if isBlankLine(line) {
			continue
		}
		if m := statusPattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
		return UnknownStatus
	}
	return UnknownStatus
}

// ExtractSection returns the lines after the first line matching start, up to
// the next named separator or the client footer. Further lines matching start
// are dropped and capture continues, so per-comment separators do not split the
// comments section. Separator-looking lines that contain a pipe are table
// borders and do not end the section. Lines matching skip (may be nil) are
// dropped. Blank edges are trimmed.
func ExtractSection(lines []string, start, skip *regexp.Regexp) []string {
	var result []string
	capturing := false

	for _, line := range lines {
		if start.MatchString(line) {
			capturing = true
			continue
		}
		if !capturing {
			continue
		}
		if sectionSeparatorPattern.MatchString(line) && !strings.Contains(line, "|") {
			break
		}
		if footerPattern.MatchString(line) {
			break
		}
		if skip != nil && skip.MatchString(line) {
			continue
		}
		result = append(result, line)
	}

	return TrimBlankEdges(result)
}

// ExtractDescription returns the description section.
func ExtractDescription(lines []string) []string {
	return ExtractSection(lines, DescriptionStartPattern, nil)
}

// ExtractComments returns the comments section without the client's
// "Use --comments" hint.
func ExtractComments(lines []string) []string {
	return ExtractSection(lines, CommentsStartPattern, CommentsSkipPattern)
}
