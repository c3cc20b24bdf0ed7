package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: jira2md TICKET-KEY [--comments N] [flags]")
	fmt.Fprintln(w, "       jira2md <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch a Jira ticket with the jira CLI and write it to TICKET-KEY.md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check jira client setup and the output directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --comments <n>        Include up to N comments")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html                Also write TICKET-KEY.html preview")
	fmt.Fprintln(w, "      --keep-meta           Keep extra frontmatter of an existing file")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Fetch timeout (default: 30s)")
	fmt.Fprintln(w, "      --jira-bin <path>     jira client binary (default: jira)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  JIRA2MD_CONFIG, JIRA2MD_TIMEOUT, JIRA2MD_OUTPUT_DIR, JIRA2MD_JIRA_BIN")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  jira2md PROJ-123")
	fmt.Fprintln(w, "  jira2md PROJ-123 --comments 5 -o tickets/")
}
