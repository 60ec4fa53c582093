package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	maxPathWidth    = 40
	maxCommentWidth = 70
)

// TextWriter outputs a human-readable table of the comments.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, p *Preview) error {
	ew := &errWriter{w: w}

	ew.printf("Dry run: %s #%d: %s\n", p.Repository, p.PullRequest, p.Title)
	ew.printf("Commit: %s\n", p.CommitID)
	ew.printf("Files: %d, prompt: %d bytes\n", p.Files, p.PromptBytes)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Comments: %d\n", len(p.Comments))
	ew.println(strings.Repeat("─", 60))

	if len(p.Comments) == 0 {
		ew.println("\nNo comments suggested.")
		return ew.err
	}

	pathWidth, lineWidth := len("FILE"), len("LINE")
	for _, c := range p.Comments {
		pathWidth = max(pathWidth, min(runewidth.StringWidth(c.File), maxPathWidth))
		lineWidth = max(lineWidth, len(strconv.Itoa(c.Line)))
	}

	ew.printf("\n%s  %s  %s\n",
		runewidth.FillRight("FILE", pathWidth),
		runewidth.FillLeft("LINE", lineWidth),
		"COMMENT")

	for _, c := range p.Comments {
		path := runewidth.Truncate(c.File, maxPathWidth, "…")
		lines := wrapText(c.Comment, maxCommentWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		ew.printf("%s  %s  %s\n",
			runewidth.FillRight(path, pathWidth),
			runewidth.FillLeft(strconv.Itoa(c.Line), lineWidth),
			lines[0])
		indent := strings.Repeat(" ", pathWidth+lineWidth+4)
		for _, l := range lines[1:] {
			ew.printf("%s%s\n", indent, l)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

// wrapText breaks text into lines no wider than width display cells.
func wrapText(text string, width int) []string {
	if runewidth.StringWidth(text) <= width {
		return []string{text}
	}
	var lines []string
	var current strings.Builder
	currentWidth := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+ww+1 > width {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteString(" ")
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += ww
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
