// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-jira2md/internal/fetch"
)

// ForClientNotFound returns hints when the jira CLI is not on PATH.
func ForClientNotFound() string {
	return formatHints([]string{
		"install the jira CLI from " + fetch.InstallURL,
		"or point --jira-bin (JIRA2MD_JIRA_BIN) at the binary",
	})
}

// ForFetchFailure returns hints based on the client's error message.
// Authentication problems suggest `jira init` and JIRA_API_TOKEN; unknown
// tickets suggest checking the key and project.
func ForFetchFailure(message string) string {
	msg := strings.ToLower(message)
	var hints []string

	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "403") || strings.Contains(msg, "forbidden"):
		if os.Getenv("JIRA_API_TOKEN") == "" {
			hints = append(hints, "set JIRA_API_TOKEN")
		}
		hints = append(hints, "run 'jira init' to configure the client")
	case strings.Contains(msg, "404") || strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "not found"):
		hints = append(hints, "check the ticket key and that you can see its project")
	case strings.Contains(msg, "config") && strings.Contains(msg, "init"):
		hints = append(hints, "run 'jira init' to configure the client")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow Jira instances.
func ForTimeout() string {
	return format("for slow Jira instances, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/jira2md/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/jira2md") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
