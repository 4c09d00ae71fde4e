package github

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	listOrgReposFn     func(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	listPullRequestsFn func(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
}

func (m *mockClient) ListOrgRepos(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error) {
	return m.listOrgReposFn(ctx, org, opts)
}

func (m *mockClient) ListPullRequests(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error) {
	return m.listPullRequestsFn(ctx, owner, repo, opts)
}

// pageResponse returns a response advertising the given next page; 0 means
// the last page.
func pageResponse(next int) *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: 200},
		NextPage: next,
	}
}

// makeRepo builds a Repository record for the given owner/name.
func makeRepo(owner, name string, stars, forks int) *gh.Repository {
	return &gh.Repository{
		Owner:           &gh.User{Login: gh.Ptr(owner)},
		Name:            gh.Ptr(name),
		StargazersCount: gh.Ptr(stars),
		ForksCount:      gh.Ptr(forks),
	}
}

// apiError builds the error go-github returns for a non-2xx response.
func apiError(status int, message string) error {
	u, _ := url.Parse("https://api.github.com/test")
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    &http.Request{Method: "GET", URL: u},
		},
		Message: message,
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
