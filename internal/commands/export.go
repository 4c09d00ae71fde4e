package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitaly-krugl/yaghpy/internal/format"
	"github.com/vitaly-krugl/yaghpy/internal/stats"
)

func (a *App) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export ACTION ORGANIZATION",
		Short: "Export a ranking as a dated JSON snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := ParseAction(args[0])
			if err != nil {
				return err
			}
			return a.ExportJSON(context.Background(), cmd.OutOrStdout(), action, args[1])
		},
	}
}

// ExportJSON runs the ranking and writes it to w as JSON records.
func (a *App) ExportJSON(ctx context.Context, w io.Writer, action stats.Action, org string) error {
	entries, err := a.collectTop(ctx, action, org)
	if err != nil {
		return err
	}

	date := time.Now().Format("2006-Jan-02")
	records := make([]format.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, format.Record{
			Date:         date,
			Organization: org,
			Action:       string(action),
			Repository:   e.Name,
			Value:        e.Value,
		})
	}
	return format.WriteJSON(w, records)
}
