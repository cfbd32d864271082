package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"redcarpet/internal/store"
)

func newRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded pipeline runs",
		Long: `Runs lists the pipeline runs recorded in the database, newest first,
with the corpus sizes each run saw.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Store.DatabasePath == "" {
				return fmt.Errorf("no database configured, set store.database_path")
			}
			db, err := store.Open(cfg.Store.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.Runs(limit)
			if err != nil {
				return err
			}
			fmt.Print(formatRuns(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")
	return cmd
}

func formatRuns(runs []store.Run) string {
	if len(runs) == 0 {
		return "no runs recorded\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-36s  %-4s  %8s  %8s  %s\n", "id", "year", "total", "kept", "started")
	for _, r := range runs {
		fmt.Fprintf(&b, "%-36s  %-4s  %8d  %8d  %s\n",
			r.ID, r.Year, r.TweetsTotal, r.TweetsKept,
			r.StartedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
