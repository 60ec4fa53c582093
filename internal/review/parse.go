package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const fence = "```"

// StripFence removes one leading code fence (with an optional language tag)
// and one trailing fence. Text outside a fence is returned trimmed but
// otherwise untouched; JSON embedded in surrounding prose is not searched for.
func StripFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, fence) {
		return content
	}

	content = strings.TrimPrefix(content, fence)
	tagEnd := strings.IndexFunc(content, func(r rune) bool {
		return !isTagRune(r)
	})
	if tagEnd == -1 {
		tagEnd = len(content)
	}
	content = content[tagEnd:]

	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, fence)
	return strings.TrimSpace(content)
}

func isTagRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' || r == '+'
}

// rawComment distinguishes absent keys from zero values.
type rawComment struct {
	File    *string `json:"file"`
	Line    *int    `json:"line"`
	Comment *string `json:"comment"`
}

// ParseComments parses the model answer into comments. Anything that is not
// a JSON array of objects carrying file, line and comment yields a *ParseError.
func ParseComments(content string) ([]Comment, error) {
	cleaned := StripFence(content)

	if !strings.HasPrefix(cleaned, "[") {
		if json.Valid([]byte(cleaned)) {
			return nil, &ParseError{Content: content, Err: errors.New("response is JSON but not an array")}
		}
	}

	var raw []rawComment
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &ParseError{Content: content, Err: err}
	}

	comments := make([]Comment, 0, len(raw))
	for i, rc := range raw {
		if missing := rc.missingKeys(); len(missing) > 0 {
			return nil, &ParseError{
				Content: content,
				Err:     fmt.Errorf("element %d: missing %s", i, strings.Join(missing, ", ")),
			}
		}
		comments = append(comments, Comment{File: *rc.File, Line: *rc.Line, Comment: *rc.Comment})
	}
	return comments, nil
}

func (rc rawComment) missingKeys() []string {
	var missing []string
	if rc.File == nil {
		missing = append(missing, "file")
	}
	if rc.Line == nil {
		missing = append(missing, "line")
	}
	if rc.Comment == nil {
		missing = append(missing, "comment")
	}
	return missing
}
