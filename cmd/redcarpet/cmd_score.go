package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"redcarpet/internal/results"
	"redcarpet/internal/score"
)

func newScoreCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Grade the results against the answer key",
		Long: `Score compares the extracted results with the ground-truth answers file
(<output_dir>/gg<year>answers.json) and prints per-task completeness and
spelling marks. With --watch it keeps running and regrades every time the
results file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gradeOnce(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			// One cached reader for the whole watch session; each change
			// event drops the cache so the rewritten file is reread.
			reader := results.OpenReader(cfg.ResultsJSONPath(), cfg.Ceremony.Year, cfg.Ceremony.TemplateAwards)
			logger.Info("watching for changes", zap.String("path", cfg.ResultsJSONPath()))
			watcher, err := score.NewWatcher(cfg.ResultsJSONPath(), func() {
				reader.Invalidate()
				if err := regrade(reader); err != nil {
					fmt.Fprintln(os.Stderr, "Error:", err)
				}
			})
			if err != nil {
				return err
			}
			return watcher.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "regrade whenever the results file changes")
	return cmd
}

func gradeOnce() error {
	doc, err := loadResults()
	if err != nil {
		return err
	}
	return grade(doc)
}

func regrade(reader *results.Reader) error {
	doc, err := reader.Document()
	if err != nil {
		return err
	}
	return grade(doc)
}

func grade(doc *results.Document) error {
	answers, err := os.ReadFile(cfg.AnswersPath())
	if err != nil {
		return fmt.Errorf("read answer key: %w", err)
	}
	report, err := score.Grade(doc, answers)
	if err != nil {
		return err
	}
	fmt.Print(score.FormatReport(report))
	return nil
}
