// Package stats collects per-repository metric values for a GitHub
// organization.
package stats

import (
	"context"
	"fmt"
	"log"

	ghub "github.com/vitaly-krugl/yaghpy/internal/github"
	"github.com/vitaly-krugl/yaghpy/internal/rank"
)

// Action selects the metric repositories are ranked by.
type Action string

const (
	Stars        Action = "stars"
	Forks        Action = "forks"
	Pulls        Action = "pulls"
	ContribRatio Action = "contrib-ratio"
)

// Actions lists the supported actions in CLI order.
var Actions = []Action{Stars, Forks, Pulls, ContribRatio}

// Collector gathers (repository, metric) pairs for one organization.
type Collector struct {
	client ghub.Client
	logger *log.Logger
}

// NewCollector creates a Collector over the given API client. The logger
// receives progress output and is expected to discard it unless debug mode
// is on.
func NewCollector(client ghub.Client, logger *log.Logger) *Collector {
	return &Collector{client: client, logger: logger}
}

// Collect returns one entry per repository, in the order GitHub listed them.
// Secondary pull-request fetches run one repository at a time so that rate
// quota consumption stays predictable and a failure names the repository
// being processed. Errors from the API layer propagate without recovery.
func (c *Collector) Collect(ctx context.Context, action Action, org string) ([]rank.Entry, error) {
	repos, err := ghub.FetchOrgRepos(ctx, c.client, org, c.logger)
	if err != nil {
		return nil, err
	}

	entries := make([]rank.Entry, 0, len(repos))
	for _, repo := range repos {
		switch action {
		case Stars:
			entries = append(entries, rank.Entry{Name: repo.Name, Value: float64(repo.Stars)})
		case Forks:
			entries = append(entries, rank.Entry{Name: repo.Name, Value: float64(repo.Forks)})
		case Pulls:
			pulls, err := c.countPulls(ctx, repo)
			if err != nil {
				return nil, err
			}
			entries = append(entries, rank.Entry{Name: repo.Name, Value: float64(pulls)})
		case ContribRatio:
			if repo.Forks == 0 {
				// A fork-less repository has no defined contribution ratio.
				c.logger.Printf("skipping %s: no forks", repo.FullName())
				continue
			}
			pulls, err := c.countPulls(ctx, repo)
			if err != nil {
				return nil, err
			}
			entries = append(entries, rank.Entry{Name: repo.Name, Value: float64(pulls) / float64(repo.Forks)})
		default:
			return nil, fmt.Errorf("unsupported action %q", action)
		}
	}
	return entries, nil
}

func (c *Collector) countPulls(ctx context.Context, repo ghub.Repo) (int, error) {
	pulls, err := ghub.CountPullRequests(ctx, c.client, repo.Owner, repo.Name, c.logger)
	if err != nil {
		return 0, fmt.Errorf("counting pull requests for %s: %w", repo.FullName(), err)
	}
	return pulls, nil
}
