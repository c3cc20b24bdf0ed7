package pipeline

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Line boundaries: CRLF, LF, CR, VT, FF, the file/group/record separators,
// NEL and the Unicode line and paragraph separators.
var lineBoundary = regexp.MustCompile(`\r\n|[\r\v\f\x1c\x1d\x1e\x{85}\x{2028}\x{2029}]`)

// StripANSI splits raw client output into lines, removes ANSI escape
// sequences and trims surrounding whitespace from each line.
// A trailing newline does not produce an extra empty line.
func StripANSI(raw string) []string {
	if raw == "" {
		return nil
	}

	raw = normalizeLineEndings(raw)
	raw = strings.TrimSuffix(raw, "\n")

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(ansi.Strip(line))
	}
	return lines
}

// TrimBlankEdges removes leading and trailing blank lines.
// The returned slice shares the backing array of lines.
func TrimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlankLine(lines[start]) {
		start++
	}
	for end > start && isBlankLine(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

// normalizeLineEndings converts every line boundary to \n.
func normalizeLineEndings(content string) string {
	return lineBoundary.ReplaceAllString(content, "\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
