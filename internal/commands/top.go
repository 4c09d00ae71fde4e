package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitaly-krugl/yaghpy/internal/format"
	"github.com/vitaly-krugl/yaghpy/internal/rank"
	"github.com/vitaly-krugl/yaghpy/internal/stats"
)

type actionSpec struct {
	action  stats.Action
	short   string
	aliases []string
}

var actionSpecs = []actionSpec{
	{action: stats.Stars, short: "Top-N repos by number of stars"},
	{action: stats.Forks, short: "Top-N repos by number of forks"},
	{action: stats.Pulls, short: "Top-N repos by number of pull requests"},
	{
		action:  stats.ContribRatio,
		short:   "Top-N repos by contribution ratio (pull requests / forks)",
		aliases: []string{"contrib-percent"},
	},
}

// ParseAction maps a CLI token to an Action, accepting the historical
// contrib-percent spelling.
func ParseAction(s string) (stats.Action, error) {
	if s == "contrib-percent" {
		return stats.ContribRatio, nil
	}
	for _, action := range stats.Actions {
		if s == string(action) {
			return action, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

func (a *App) newTopCommand(spec actionSpec) *cobra.Command {
	return &cobra.Command{
		Use:     string(spec.action) + " ORGANIZATION",
		Short:   spec.short,
		Aliases: spec.aliases,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTop(cmd, spec.action, args[0])
		},
	}
}

func (a *App) runTop(cmd *cobra.Command, action stats.Action, org string) error {
	entries, err := a.collectTop(context.Background(), action, org)
	if err != nil {
		return err
	}
	return format.WriteResults(cmd.OutOrStdout(), entries)
}

// collectTop runs the fetch-collect-rank pipeline shared by the top and
// export commands. The result limit is validated before any request is
// issued.
func (a *App) collectTop(ctx context.Context, action stats.Action, org string) ([]rank.Entry, error) {
	if a.Max < 1 {
		return nil, fmt.Errorf("%w, got %d", rank.ErrInvalidMax, a.Max)
	}
	if err := a.ensureClient(); err != nil {
		return nil, err
	}

	collector := stats.NewCollector(a.GHClient, a.logger())
	entries, err := collector.Collect(ctx, action, org)
	if err != nil {
		return nil, fmt.Errorf("collecting %s for %s: %w", action, org, err)
	}
	return rank.Top(entries, a.Max)
}
