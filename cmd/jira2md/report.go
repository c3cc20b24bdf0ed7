package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	jira2md "github.com/alnah/go-jira2md"
	"github.com/alnah/go-jira2md/internal/config"
	"github.com/alnah/go-jira2md/internal/fileutil"
	"github.com/alnah/go-jira2md/internal/hints"
)

// printError writes "Error: <msg>" and any matching hint to w.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s%s\n", capitalize(err.Error()), hintFor(err))
}

// hintFor picks the actionable hint for err, or "" when none applies.
// It uses errors.Is on wrapped errors, so callers must wrap with %w.
func hintFor(err error) string {
	switch {
	case errors.Is(err, jira2md.ErrClientNotFound):
		return hints.ForClientNotFound()
	case errors.Is(err, jira2md.ErrFetchTimeout):
		return hints.ForTimeout()
	case errors.Is(err, jira2md.ErrFetchFailed):
		return hints.ForFetchFailure(fetchDetail(err))
	case errors.Is(err, config.ErrConfigNotFound):
		var cfgErr *configError
		if errors.As(err, &cfgErr) && !fileutil.IsFilePath(cfgErr.name) {
			return hints.ForConfigNotFound(config.SearchPaths(cfgErr.name))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// fetchDetail returns the client's message without the "failed to fetch KEY:"
// prefix, so the ticket key itself never triggers a status-code hint.
func fetchDetail(err error) string {
	_, detail, ok := strings.Cut(err.Error(), ": ")
	if !ok {
		return ""
	}
	return detail
}

// capitalize upper-cases the first letter of an error message for display.
func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
