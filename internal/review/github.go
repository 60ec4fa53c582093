package review

import "github.com/dshills/prreview/internal/github"

// ReviewBody is the summary text of every submitted review.
const ReviewBody = "🤖 AI Inline Code Review"

// ToReviewComments maps model comments onto the hosting API's comment shape,
// preserving order, duplicates and line numbers as given.
func ToReviewComments(comments []Comment) []github.ReviewComment {
	out := make([]github.ReviewComment, len(comments))
	for i, c := range comments {
		out[i] = github.ReviewComment{
			Path: c.File,
			Line: c.Line,
			Body: c.Comment,
		}
	}
	return out
}

// BuildReview assembles the comment-only review submission for pr.
func BuildReview(pr github.PullRequest, comments []Comment) github.ReviewRequest {
	return github.ReviewRequest{
		CommitID: pr.HeadSHA(),
		Body:     ReviewBody,
		Event:    github.EventComment,
		Comments: ToReviewComments(comments),
	}
}
