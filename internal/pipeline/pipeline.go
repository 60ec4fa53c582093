package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dshills/prreview/internal/github"
	"github.com/dshills/prreview/internal/logging"
	"github.com/dshills/prreview/internal/providers"
	"github.com/dshills/prreview/internal/redact"
	"github.com/dshills/prreview/internal/review"
)

// PullRequests is the hosting API surface the pipeline needs.
type PullRequests interface {
	LatestOpenPullRequest(ctx context.Context, repo string) (github.PullRequest, error)
	ListFiles(ctx context.Context, pr github.PullRequest) ([]github.ChangedFile, error)
	PostReview(ctx context.Context, pr github.PullRequest, review github.ReviewRequest) (github.ReviewResult, error)
}

// Options tune a run.
type Options struct {
	Repository    string
	Temperature   float64
	RedactSecrets bool
	RedactPaths   []string
	// DryRun stops after parsing the model answer; nothing is posted.
	DryRun bool
}

// Outcome describes what a run did.
type Outcome struct {
	RunID       string
	PullRequest github.PullRequest
	Files       int
	PromptBytes int
	Comments    []review.Comment
	Result      github.ReviewResult
	Posted      bool
	// Err is the failure caught at the review boundary, if any.
	Err error
}

// Runner wires the hosting API and the model service together.
type Runner struct {
	hosting PullRequests
	model   providers.Reviewer
	logger  *slog.Logger
	opts    Options
}

// New creates a Runner. A nil logger discards output.
func New(hosting PullRequests, model providers.Reviewer, logger *slog.Logger, opts Options) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{hosting: hosting, model: model, logger: logger, opts: opts}
}

// Run executes the pipeline once. The returned error is non-nil only for
// fatal failures (*github.RequestError, *github.NotFoundError).
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	out := &Outcome{RunID: uuid.NewString()}
	log := r.logger.With("run", out.RunID)

	log.Info("fetching latest open pull request", "repo", r.opts.Repository)
	pr, err := r.hosting.LatestOpenPullRequest(ctx, r.opts.Repository)
	if err != nil {
		return nil, errors.Wrap(err, "locating pull request")
	}
	out.PullRequest = pr
	log.Info("found latest PR", "pr", pr.Number, "title", pr.Title, "head", pr.HeadSHA())

	files, err := r.hosting.ListFiles(ctx, pr)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching files of PR #%d", pr.Number)
	}
	out.Files = len(files)
	log.Info("fetched files", "pr", pr.Number, "count", len(files))

	if r.opts.RedactSecrets {
		var stats redact.Stats
		files, stats = redact.Files(files, r.opts.RedactPaths)
		if stats.Total() > 0 {
			log.Warn("redacted patches before review", "withheld", stats.FilesWithheld, "secrets", stats.Secrets)
		}
	}

	prompt := review.BuildPrompt(review.BuildDiffSummary(files))
	out.PromptBytes = len(prompt)

	if err := r.reviewAndPost(ctx, log, pr, prompt, out); err != nil {
		if providers.IsAuthError(err) {
			log.Error("model service rejected credentials (check OPENAI_API_KEY)", "pr", pr.Number, "provider", r.model.Name(), "error", err)
		} else {
			log.Error("error during AI review", "pr", pr.Number, "error", err)
		}
		out.Err = err
	}
	return out, nil
}

// reviewAndPost is the error boundary around the model request and the
// review submission.
func (r *Runner) reviewAndPost(ctx context.Context, log *slog.Logger, pr github.PullRequest, prompt string, out *Outcome) error {
	log.Info("querying model for inline feedback", "provider", r.model.Name(), "prompt_bytes", len(prompt))
	resp, err := r.model.Review(ctx, providers.ReviewRequest{
		Prompt:      prompt,
		Temperature: r.opts.Temperature,
	})
	if err != nil {
		return errors.Wrap(err, "requesting review")
	}
	log.Debug("model answered", "model", resp.Model, "tokens", resp.TokensUsed)

	comments, err := review.ParseComments(resp.Content)
	if err != nil {
		log.Debug("unparseable model answer", "content", resp.Content)
		return errors.Wrap(err, "parsing model response")
	}
	out.Comments = comments
	log.Info("AI review generated", "comments", len(comments))

	if r.opts.DryRun {
		log.Info("dry run, not posting review", "pr", pr.Number)
		return nil
	}

	res, err := r.hosting.PostReview(ctx, pr, review.BuildReview(pr, comments))
	if err != nil {
		return errors.Wrap(err, "posting review")
	}
	out.Result = res
	if !res.OK() {
		log.Error("failed to post inline review", "pr", pr.Number, "status", res.StatusCode, "response", res.Body)
		return nil
	}

	out.Posted = true
	log.Info("inline comments posted successfully", "pr", pr.Number, "comments", len(comments))
	return nil
}
