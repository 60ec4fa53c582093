package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/prreview/internal/github"
	"github.com/dshills/prreview/internal/review"
)

// Preview is the review that would be submitted, as shown in dry-run mode.
type Preview struct {
	Repository  string           `json:"repository" yaml:"repository"`
	PullRequest int              `json:"pullRequest" yaml:"pullRequest"`
	Title       string           `json:"title" yaml:"title"`
	CommitID    string           `json:"commitId" yaml:"commitId"`
	Body        string           `json:"body" yaml:"body"`
	Files       int              `json:"files" yaml:"files"`
	PromptBytes int              `json:"promptBytes" yaml:"promptBytes"`
	Comments    []review.Comment `json:"comments" yaml:"comments"`
}

// NewPreview builds a Preview for pr.
func NewPreview(repo string, pr github.PullRequest, comments []review.Comment) *Preview {
	if comments == nil {
		comments = []review.Comment{}
	}
	return &Preview{
		Repository:  repo,
		PullRequest: pr.Number,
		Title:       pr.Title,
		CommitID:    pr.HeadSHA(),
		Body:        review.ReviewBody,
		Comments:    comments,
	}
}

// Writer writes a preview in a specific format.
type Writer interface {
	Write(w io.Writer, p *Preview) error
}

// GetWriter returns a writer for the specified format. Empty means text.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "", "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml", "yml":
		return &YAMLWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WritePreview writes p to outPath, or stdout when outPath is empty.
func WritePreview(p *Preview, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, p)
}
