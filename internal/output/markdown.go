package output

import (
	"io"
	"strings"
)

// MarkdownWriter outputs the preview as a markdown table.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, p *Preview) error {
	ew := &errWriter{w: w}

	ew.printf("## %s\n\n", p.Body)
	ew.printf("Pull request #%d in `%s` at `%s`\n\n", p.PullRequest, p.Repository, shortSHA(p.CommitID))
	ew.printf("%d files reviewed, %d byte prompt\n\n", p.Files, p.PromptBytes)

	if len(p.Comments) == 0 {
		ew.println("No comments suggested. :white_check_mark:")
		return ew.err
	}

	ew.println("| File | Line | Comment |")
	ew.println("|------|-----:|---------|")
	for _, c := range p.Comments {
		ew.printf("| `%s` | %d | %s |\n", c.File, c.Line, escapeCell(c.Comment))
	}
	return ew.err
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
