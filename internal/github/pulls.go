package github

import (
	"context"
	"log"

	gh "github.com/google/go-github/v68/github"
)

// CountPullRequests returns the number of pull requests in any state for the
// repository, paging through the pulls endpoint until exhausted.
func CountPullRequests(ctx context.Context, client Client, owner, repo string, logger *log.Logger) (int, error) {
	opts := &gh.PullRequestListOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: pageSize},
	}

	count := 0
	for {
		page, resp, err := client.ListPullRequests(ctx, owner, repo, opts)
		if err != nil {
			return 0, wrapAPIError(err)
		}
		count += len(page)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		logger.Printf("counted %d pull requests in %s/%s so far, requesting page %d", count, owner, repo, resp.NextPage)
	}
	return count, nil
}
