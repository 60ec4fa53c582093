package github

// PullRequest is the subset of the pull request record prreview needs.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Head   struct {
		SHA string `json:"sha"`
	} `json:"head"`
}

// HeadSHA returns the head commit hash.
func (p PullRequest) HeadSHA() string { return p.Head.SHA }

// ChangedFile is one entry of the pull request files listing. Patch is empty
// for binary files and for files whose content did not change.
type ChangedFile struct {
	Filename string `json:"filename"`
	Patch    string `json:"patch,omitempty"`
}

// ReviewComment represents an inline comment on a PR review.
type ReviewComment struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Body string `json:"body"`
}

// ReviewRequest represents a PR review to post.
type ReviewRequest struct {
	CommitID string          `json:"commit_id"`
	Body     string          `json:"body"`
	Event    string          `json:"event"`
	Comments []ReviewComment `json:"comments"`
}

// EventComment submits a review without approving or requesting changes.
const EventComment = "COMMENT"

// ReviewResult is the outcome of a review submission. A non-200 status is
// reported here rather than as an error.
type ReviewResult struct {
	StatusCode int
	Body       string
}

// OK reports whether the hosting API accepted the review.
func (r ReviewResult) OK() bool { return r.StatusCode == 200 }
