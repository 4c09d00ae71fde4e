// Package github wraps the GitHub v3 REST API endpoints used to rank an
// organization's repositories.
package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/vitaly-krugl/yaghpy/internal/config"
)

const httpTimeout = 30 * time.Second

// Client defines the GitHub API methods used by this application.
type Client interface {
	ListOrgRepos(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	ListPullRequests(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner *gh.Client
}

// NewClient creates a GitHub API client. Basic-auth credentials take
// precedence; otherwise a non-empty OAuth token is used; otherwise the
// client is unauthenticated and subject to the reduced rate quota.
func NewClient(creds *config.Credentials, token string) Client {
	httpClient := &http.Client{Timeout: httpTimeout}
	switch {
	case creds != nil:
		httpClient.Transport = &gh.BasicAuthTransport{
			Username: creds.User,
			Password: creds.Password,
		}
	case token != "":
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return &realClient{inner: gh.NewClient(httpClient)}
}

func (c *realClient) ListOrgRepos(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error) {
	return c.inner.Repositories.ListByOrg(ctx, org, opts)
}

func (c *realClient) ListPullRequests(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error) {
	return c.inner.PullRequests.List(ctx, owner, repo, opts)
}
