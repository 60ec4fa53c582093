package review

import "fmt"

// Comment is one suggestion returned by the model.
type Comment struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Comment string `json:"comment" yaml:"comment"`
}

// ParseError reports a model answer that is not a JSON array of comments.
type ParseError struct {
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON array: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
