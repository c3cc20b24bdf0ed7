package pipeline

// Notes:
// - Fence languages are resolved through chroma's lexer registry; tests use
//   languages with stable aliases across chroma releases
// - Conversion order matters ({{...}} before links, admonitions before code)
//   and is exercised by the combined-markup cases

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestJiraToMarkdown - Markup Translation
// ---------------------------------------------------------------------------

func TestJiraToMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "nothing to convert here",
			want:  "nothing to convert here",
		},
		{
			name:  "inline code",
			input: "run {{make test}} first",
			want:  "run `make test` first",
		},
		{
			name:  "inline code spanning lines",
			input: "a {{multi\nline}} b",
			want:  "a `multi\nline` b",
		},
		{
			name:  "several inline code spans",
			input: "{{a}} and {{b}}",
			want:  "`a` and `b`",
		},
		{
			name:  "paired note",
			input: "{note}Read this.{note}",
			want:  "> **Note:** Read this.",
		},
		{
			name:  "paired warning",
			input: "{warning}Careful{warning}",
			want:  "> **Warning:** Careful",
		},
		{
			name:  "paired tip",
			input: "{tip}Try this{tip}",
			want:  "> **Tip:** Try this",
		},
		{
			name:  "paired info",
			input: "{info}FYI{info}",
			want:  "> **Info:** FYI",
		},
		{
			name:  "orphan admonition tag",
			input: "{warning}dangling",
			want:  "> **Warning:** dangling",
		},
		{
			name:  "code macro without language",
			input: "{code}\nx\n{code}",
			want:  "```\nx\n```",
		},
		{
			name:  "code macro with language",
			input: "{code:java}\nint x;\n{code}",
			want:  "```java\nint x;\n```",
		},
		{
			name:  "noformat",
			input: "{noformat}\nraw\n{noformat}",
			want:  "```\nraw\n```",
		},
		{
			name:  "wiki link",
			input: "see [the docs|https://example.com/docs]",
			want:  "see [the docs](https://example.com/docs)",
		},
		{
			name:  "wiki link with empty text",
			input: "[|https://example.com]",
			want:  "[](https://example.com)",
		},
		{
			name:  "wiki link text wrapped across lines",
			input: "[release\nnotes|https://example.com/notes]",
			want:  "[release\nnotes](https://example.com/notes)",
		},
		{
			name:  "markdown link untouched",
			input: "[text](https://example.com)",
			want:  "[text](https://example.com)",
		},
		{
			name:  "array brackets in code are not links",
			input: "String[] parts = s.split(\"|\");\nreturn parts[1];",
			want:  "String[] parts = s.split(\"|\");\nreturn parts[1];",
		},
		{
			name:  "link inside note",
			input: "{note}See [here|https://x.io]{note}",
			want:  "> **Note:** See [here](https://x.io)",
		},
		{
			name:  "inline code inside link text",
			input: "[{{main}} branch|https://git.example.com]",
			want:  "[`main` branch](https://git.example.com)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := JiraToMarkdown(tt.input); got != tt.want {
				t.Errorf("JiraToMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCodeLanguage - Fence Info Strings
// ---------------------------------------------------------------------------

func TestCodeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params string
		want   string
	}{
		{name: "empty", params: "", want: ""},
		{name: "bare language", params: "java", want: "java"},
		{name: "alias normalised", params: "golang", want: "go"},
		{name: "case insensitive", params: "PY", want: "python"},
		{name: "shell alias", params: "sh", want: "bash"},
		{name: "language key", params: "language=json", want: "json"},
		{name: "lang key with other params", params: "borderStyle=solid|lang=yaml", want: "yaml"},
		{name: "title infers language", params: "title=Main.java|borderStyle=solid", want: "java"},
		{name: "explicit language beats title", params: "title=main.py|language=java", want: "java"},
		{name: "title without known extension", params: "title=notes", want: ""},
		{name: "only layout params", params: "borderStyle=solid", want: ""},
		{name: "unknown language sanitised", params: "Zz Lang!", want: "zzlang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CodeLanguage(tt.params); got != tt.want {
				t.Errorf("CodeLanguage(%q) = %q, want %q", tt.params, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Fixture - Join and Translate the Captured Description
// ---------------------------------------------------------------------------

func TestConvert_Fixture(t *testing.T) {
	t.Parallel()

	lines := loadFixture(t)

	want := strings.Join([]string{
		"Users report that logging in fails when the password contains a colon. " +
			"The server returns `401 Unauthorized` even with valid credentials.",
		"",
		"## Steps to reproduce",
		"",
		"1. Set a password with a colon, for example `abc:def`.",
		"2. Try to log in.",
		"",
		"```java",
		`String[] parts = header.split(":");`,
		"return parts[1];",
		"```",
		"",
		"> **Note:** Only affects basic auth.",
		"",
		"See [the runbook](https://wiki.example.com/runbook) for details.",
	}, "\n")

	got := JiraToMarkdown(JoinParagraphs(ExtractDescription(lines)))
	if got != want {
		t.Errorf("description:\ngot:\n%s\n\nwant:\n%s", got, want)
	}

	wantComments := "Jane Doe • Tue, 16 Jan 24 • Latest comment\n\n" +
		"I can reproduce this on staging. The split should use a limit of 2.\n\n" +
		"John Smith • Mon, 15 Jan 24\n\n" +
		"Thanks for the report."

	if got := JiraToMarkdown(JoinParagraphs(ExtractComments(lines))); got != wantComments {
		t.Errorf("comments:\ngot:\n%s\n\nwant:\n%s", got, wantComments)
	}
}
