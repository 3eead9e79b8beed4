package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	qerrors "github.com/teskann/quaxtools/pkg/errors"
	"github.com/teskann/quaxtools/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// ErrNoAuthor is returned when a commit is not linked to a GitHub account,
// which happens when the commit email matches no user.
var ErrNoAuthor = errors.New("commit has no linked GitHub author")

// Client provides access to the GitHub REST API for a single repository.
// Each call issues one request; nothing is cached.
type Client struct {
	*integrations.Client
	baseURL string
	owner   string
	repo    string
}

// NewClient creates a GitHub API client bound to owner/repo.
// Pass an empty string for token to use unauthenticated requests (lower rate limits):
// the Authorization header is then omitted entirely.
func NewClient(baseURL, owner, repo, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  integrations.NewClient(headers),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		owner:   owner,
		repo:    repo,
	}
}

// Repository returns the "owner/repo" reference the client is bound to.
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// CommitURL returns the API URL for the given commit.
func (c *Client) CommitURL(sha string) string {
	return fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.baseURL, c.owner, c.repo, url.PathEscape(sha))
}

// FetchCommit retrieves a single commit.
func (c *Client) FetchCommit(ctx context.Context, sha string) (*Commit, error) {
	if err := qerrors.ValidateCommitRef(sha); err != nil {
		return nil, err
	}

	var data Commit
	if err := c.Get(ctx, c.CommitURL(sha), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: github commit %s@%s", err, c.Repository(), sha)
		}
		return nil, err
	}
	return &data, nil
}

// FetchAuthorLogin retrieves a commit and returns the login of its linked
// GitHub author. It returns [ErrNoAuthor] when the author field is missing,
// null or carries no login.
func (c *Client) FetchAuthorLogin(ctx context.Context, sha string) (string, error) {
	commit, err := c.FetchCommit(ctx, sha)
	if err != nil {
		return "", err
	}
	if commit.Author == nil || commit.Author.Login == "" {
		return "", ErrNoAuthor
	}
	return commit.Author.Login, nil
}
