package github

import (
	"context"
	"log"

	gh "github.com/google/go-github/v68/github"
)

const pageSize = 100

// FetchOrgRepos returns all source (non-fork) repositories of the
// organization in the order GitHub returns them, following Link-header
// pagination until exhausted.
func FetchOrgRepos(ctx context.Context, client Client, org string, logger *log.Logger) ([]Repo, error) {
	opts := &gh.RepositoryListByOrgOptions{
		Type:        "sources",
		ListOptions: gh.ListOptions{PerPage: pageSize},
	}

	var repos []Repo
	for {
		page, resp, err := client.ListOrgRepos(ctx, org, opts)
		if err != nil {
			return nil, wrapAPIError(err)
		}
		for _, r := range page {
			repos = append(repos, Repo{
				Owner: r.GetOwner().GetLogin(),
				Name:  r.GetName(),
				Stars: r.GetStargazersCount(),
				Forks: r.GetForksCount(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		logger.Printf("fetched %d repositories from %s, requesting page %d", len(repos), org, resp.NextPage)
	}
	return repos, nil
}
