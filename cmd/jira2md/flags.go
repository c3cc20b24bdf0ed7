package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	jira2md "github.com/alnah/go-jira2md"
)

// Sentinel errors for argument parsing.
var (
	ErrUsage           = errors.New("usage: jira2md TICKET-KEY [--comments N]")
	ErrUnknownArgument = errors.New("unknown argument")
	ErrCommentsValue   = errors.New("--comments requires a number")
	ErrInvalidFlag     = errors.New("invalid flag")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for a ticket conversion.
type convertFlags struct {
	common      commonFlags
	comments    string
	commentsSet bool
	output      string
	timeout     string
	jiraBin     string
	html        bool
	keepMeta    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
}

// newFlagSet returns a FlagSet that reports errors instead of printing them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseConvertFlags parses conversion flags and returns positional args.
// A leading ticket key is validated before any flag. -h/--help is reported as
// flag.ErrHelp.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := newFlagSet("jira2md")
	f := &convertFlags{}

	fs.StringVar(&f.comments, "comments", "", "include up to N comments")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "fetch timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.jiraBin, "jira-bin", "", "jira client binary name or path")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.BoolVar(&f.keepMeta, "keep-meta", false, "keep extra frontmatter of an existing file")
	addCommonFlags(fs, &f.common)

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if err := jira2md.ValidateKey(args[0]); err != nil {
			return nil, nil, err
		}
	}

	// pflag would report a bare trailing --comments as a generic missing value.
	if len(args) > 0 && args[len(args)-1] == "--comments" {
		return nil, nil, ErrCommentsValue
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, translateFlagError(err)
	}
	f.commentsSet = fs.Changed("comments")

	return f, fs.Args(), nil
}

// translateFlagError reports unknown flags the same way as unknown positionals.
func translateFlagError(err error) error {
	msg := err.Error()
	if name, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return fmt.Errorf("%w '%s'", ErrUnknownArgument, name)
	}
	if strings.HasPrefix(msg, "unknown shorthand flag: ") {
		if _, arg, ok := strings.Cut(msg, " in "); ok {
			return fmt.Errorf("%w '%s'", ErrUnknownArgument, arg)
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
}

// parseComments converts the --comments value. Negative counts are left to
// request validation.
func parseComments(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrCommentsValue
	}
	return n, nil
}

// ticketKey returns the single positional ticket key.
// An invalid key is reported before any extra argument.
func ticketKey(positional []string) (string, error) {
	if len(positional) == 0 {
		return "", ErrUsage
	}
	key := positional[0]
	if err := jira2md.ValidateKey(key); err != nil {
		return "", err
	}
	if len(positional) > 1 {
		return "", fmt.Errorf("%w '%s'", ErrUnknownArgument, positional[1])
	}
	return key, nil
}
