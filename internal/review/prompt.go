package review

import (
	"strings"

	"github.com/dshills/prreview/internal/github"
)

const promptHeader = `You are an expert code reviewer.
Read the GitHub pull request diff below and point out only short, line-specific corrections.
Answer with a JSON array in which every issue is one object:
[
  {
    "file": "path/of/the/file",
    "line": 12,
    "comment": "One short sentence describing the fix"
  }
]
Output the JSON array only. No markdown, no explanations, no summaries.

Diff:
`

// BuildDiffSummary concatenates a "File: <name>" block for every file that has
// a patch, in the order given. Files without a patch are skipped.
func BuildDiffSummary(files []github.ChangedFile) string {
	var b strings.Builder
	for _, f := range files {
		if f.Patch == "" {
			continue
		}
		b.WriteString("File: ")
		b.WriteString(f.Filename)
		b.WriteString("\n")
		b.WriteString(f.Patch)
		b.WriteString("\n\n")
	}
	return b.String()
}

// BuildPrompt embeds summary verbatim in the review instructions.
func BuildPrompt(summary string) string {
	var b strings.Builder
	b.Grow(len(promptHeader) + len(summary) + 1)
	b.WriteString(promptHeader)
	b.WriteString(summary)
	b.WriteString("\n")
	return b.String()
}
