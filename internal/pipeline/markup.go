package pipeline

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Jira wiki markup that survives the client's --plain rendering.
var (
	// {{monospace}}, possibly spanning lines.
	inlineCodePattern = regexp.MustCompile(`(?s)\{\{(.+?)\}\}`)

	// {code}, {code:java}, {code:title=Foo.java|borderStyle=solid}
	codeMacroPattern = regexp.MustCompile(`\{code(:[^}]*)?\}`)

	// [link text|https://example.com] without nested brackets. Wrapped link
	// text may span lines.
	wikiLinkPattern = regexp.MustCompile(`\[([^|\[\]]*)\|([^\]]*)\]`)

	// Characters allowed in a fence info string for unknown languages.
	unsafeLanguageChars = regexp.MustCompile(`[^a-z0-9_+#.-]`)
)

const (
	codeFence     = "```"
	noformatMacro = "{noformat}"
)

// admonition maps a Jira panel macro to a labelled blockquote.
type admonition struct {
	tag    string
	prefix string
	paired *regexp.Regexp
}

func newAdmonition(tag, label string) admonition {
	return admonition{
		tag:    "{" + tag + "}",
		prefix: "> **" + label + ":** ",
		paired: regexp.MustCompile(`(?s)\{` + tag + `\}(.*?)\{` + tag + `\}`),
	}
}

var admonitions = []admonition{
	newAdmonition("note", "Note"),
	newAdmonition("warning", "Warning"),
	newAdmonition("tip", "Tip"),
	newAdmonition("info", "Info"),
}

// JiraToMarkdown converts the Jira wiki markup left in the plain rendering:
//
//	{{text}}              -> `text`
//	{note}text{note}      -> > **Note:** text   (also warning, tip, info)
//	{code:lang} {code}    -> ```lang ```
//	{noformat}            -> ```
//	[text|url]            -> [text](url)
//
// Unpaired admonition tags become the blockquote label on their own.
func JiraToMarkdown(text string) string {
	text = inlineCodePattern.ReplaceAllString(text, "`${1}`")

	for _, a := range admonitions {
		text = a.paired.ReplaceAllString(text, a.prefix+"${1}")
		text = strings.ReplaceAll(text, a.tag, a.prefix)
	}

	text = codeMacroPattern.ReplaceAllStringFunc(text, func(macro string) string {
		return codeFence + CodeLanguage(macroParams(macro))
	})
	text = strings.ReplaceAll(text, noformatMacro, codeFence)

	return wikiLinkPattern.ReplaceAllString(text, "[${1}](${2})")
}

// CodeLanguage returns the fence language for the parameters of a {code}
// macro ("java", "language=go|title=x", "title=Main.java"), or "" when none
// can be determined. Known languages are normalised to Chroma's lexer alias.
func CodeLanguage(params string) string {
	if params == "" {
		return ""
	}

	var title string
	for _, param := range strings.Split(params, "|") {
		key, value, hasValue := strings.Cut(param, "=")
		if !hasValue {
			return canonicalLanguage(key)
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "language", "lang":
			return canonicalLanguage(value)
		case "title":
			title = strings.TrimSpace(value)
		}
	}

	if title != "" {
		if lexer := lexers.Match(title); lexer != nil {
			return lexerAlias(lexer)
		}
	}
	return ""
}

// macroParams returns the text after "{code:" without the closing brace.
func macroParams(macro string) string {
	params := strings.TrimSuffix(strings.TrimPrefix(macro, "{code"), "}")
	return strings.TrimPrefix(params, ":")
}

// canonicalLanguage maps a language name to Chroma's primary alias.
// Unknown names are lower-cased and stripped of characters that would
// break the fence info string.
func canonicalLanguage(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if lexer := lexers.Get(name); lexer != nil {
		return lexerAlias(lexer)
	}
	return unsafeLanguageChars.ReplaceAllString(strings.ToLower(name), "")
}

func lexerAlias(lexer chroma.Lexer) string {
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}
