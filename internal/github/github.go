package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

const defaultAPIURL = "https://api.github.com"

// Client provides access to the GitHub REST API.
type Client struct {
	rest   *api.RESTClient
	apiURL string
}

// NewClient creates a GitHub client authenticated with token. An empty apiURL
// means api.github.com; GitHub Enterprise installs pass their /api/v3 root.
func NewClient(token, apiURL string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is empty")
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	apiURL = strings.TrimRight(apiURL, "/")

	host, err := hostFor(apiURL)
	if err != nil {
		return nil, err
	}

	rest, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
		Host:      host,
		Timeout:   60 * time.Second,
		Headers: map[string]string{
			"Accept": "application/vnd.github.v3+json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating REST client: %w", err)
	}

	return &Client{rest: rest, apiURL: apiURL}, nil
}

// hostFor maps an API root to the host name go-gh uses for credentials.
func hostFor(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid GitHub API URL %q", apiURL)
	}
	host := u.Hostname()
	if host == "api.github.com" {
		return "github.com", nil
	}
	return host, nil
}

// LatestOpenPullRequest returns the most recently created open pull request
// of repo (owner/name). The API's ordering is trusted; the list is not re-sorted.
func (c *Client) LatestOpenPullRequest(ctx context.Context, repo string) (PullRequest, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/pulls?state=open&sort=created&direction=desc", c.apiURL, repo)

	var prs []PullRequest
	if err := c.rest.DoWithContext(ctx, http.MethodGet, endpoint, nil, &prs); err != nil {
		return PullRequest{}, requestError("fetching pull requests", err)
	}
	if len(prs) == 0 {
		return PullRequest{}, &NotFoundError{Repository: repo}
	}
	return prs[0], nil
}

// ListFiles fetches the changed files of pr, in the order the API returns them.
// TODO: follow the Link header; the files endpoint pages at 30 entries by default.
func (c *Client) ListFiles(ctx context.Context, pr PullRequest) ([]ChangedFile, error) {
	var files []ChangedFile
	if err := c.rest.DoWithContext(ctx, http.MethodGet, pr.URL+"/files", nil, &files); err != nil {
		return nil, requestError("fetching PR files", err)
	}
	return files, nil
}

// PostReview submits review on pr. Any status other than 200 is returned in
// the result, not as an error; only transport failures produce an error.
func (c *Client) PostReview(ctx context.Context, pr PullRequest, review ReviewRequest) (ReviewResult, error) {
	payload, err := json.Marshal(review)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("marshaling review: %w", err)
	}

	resp, err := c.rest.RequestWithContext(ctx, http.MethodPost, pr.URL+"/reviews", bytes.NewReader(payload))
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			return ReviewResult{StatusCode: httpErr.StatusCode, Body: httpErr.Message}, nil
		}
		return ReviewResult{}, requestError("posting review", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("reading response: %w", err)
	}

	return ReviewResult{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
