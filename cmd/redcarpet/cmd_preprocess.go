package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"redcarpet/internal/pipeline"
	"redcarpet/internal/store"
	"redcarpet/internal/tweet"
)

// corpusRun is one pass of the corpus through the cleaning pipeline.
type corpusRun struct {
	total  int
	kept   []tweet.Tweet
	groups *pipeline.GroupFilter
}

// runCorpus reads the configured corpus and pushes every tweet through the
// cleaning, filtering and grouping pipeline.
func runCorpus() (*corpusRun, error) {
	path := cfg.CorpusFile()
	logger.Info("reading corpus", zap.String("path", path))

	groups := pipeline.NewGroupFilter()
	p := pipeline.New(
		pipeline.NewUnicodeCleaner(),
		pipeline.NewASCIIFoldCleaner(),
		pipeline.NewURLCleaner(),
		pipeline.NewWhitespaceCleaner(),
		pipeline.NewStripCleaner(),
		pipeline.EmptyTextFilter{},
	)
	if cfg.Corpus.DropRetweets {
		p.Add(pipeline.KeywordFilter{Keywords: []string{"RT"}, CaseSensitive: true, Exclude: true})
	}
	p.Add(pipeline.MinLengthFilter{Min: 10})
	p.Add(pipeline.HashtagExtractor{})
	p.Add(pipeline.MentionHumanizer{})
	p.Add(groups)

	run := &corpusRun{groups: groups}
	reader := tweet.NewReader(path, cfg.Corpus.Dedupe)
	err := reader.Each(func(t tweet.Tweet) error {
		run.total++
		if p.Apply(&t) {
			run.kept = append(run.kept, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("corpus processed",
		zap.Int("total", run.total),
		zap.Int("kept", len(run.kept)),
		zap.Int("duplicates", reader.Dropped))
	return run, nil
}

// groupCounts summarizes the group sizes for storage and display.
func (r *corpusRun) groupCounts() map[string]int {
	counts := make(map[string]int)
	for name, tweets := range r.groups.Groups() {
		counts[name] = len(tweets)
	}
	return counts
}

func newPreprocessCmd() *cobra.Command {
	var groupsDir string

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Run the cleaning pipeline and report group sizes",
		Long: `Preprocess reads the corpus, cleans and filters every tweet, buckets the
survivors into topic groups, and records the run. No extraction happens;
use it to sanity-check a corpus before a full extract. With --write-groups
each group is also dumped to <dir>/<group>.json for inspection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := runCorpus()
			if err != nil {
				return err
			}

			if groupsDir != "" {
				if err := writeGroups(groupsDir, run.groups.Groups()); err != nil {
					return err
				}
				logger.Info("group files written", zap.String("dir", groupsDir))
			}

			counts := run.groupCounts()
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Printf("Corpus: %d tweets, %d kept\n\n", run.total, len(run.kept))
			for _, name := range names {
				fmt.Printf("  %-10s %7d\n", name, counts[name])
			}

			if cfg.Store.DatabasePath == "" {
				return nil
			}
			db, err := store.Open(cfg.Store.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			rec, err := db.BeginRun(cfg.Ceremony.Year, run.total)
			if err != nil {
				return err
			}
			if err := db.SaveGroups(rec.ID, counts); err != nil {
				return err
			}
			return db.FinishRun(rec, len(run.kept))
		},
	}

	cmd.Flags().StringVar(&groupsDir, "write-groups", "", "also write each group to <dir>/<group>.json")
	return cmd
}

// writeGroups dumps each tweet group to its own JSON file.
func writeGroups(dir string, groups map[string][]tweet.Tweet) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create groups directory: %w", err)
	}
	for name, tweets := range groups {
		data, err := json.MarshalIndent(tweets, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s group: %w", name, err)
		}
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s group: %w", name, err)
		}
	}
	return nil
}
