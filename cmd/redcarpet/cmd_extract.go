package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"redcarpet/internal/aggregate"
	"redcarpet/internal/extract"
	"redcarpet/internal/nlp"
	"redcarpet/internal/pipeline"
	"redcarpet/internal/results"
	"redcarpet/internal/store"
	"redcarpet/internal/tweet"
)

// candidateDepth is how many runner-up candidates each slot reports.
const candidateDepth = 10

func newExtractCmd() *cobra.Command {
	var strategyName string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run the full extraction and write the results files",
		Long: `Extract runs the whole pipeline: read and clean the corpus, bucket the
tweets, extract hosts, awards, winners, nominees, presenters and the
red-carpet categories, then write the JSON and text results files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := aggregate.ParseStrategy(strategyName)
			if err != nil {
				return err
			}

			run, err := runCorpus()
			if err != nil {
				return err
			}

			doc, err := runExtraction(cmd, run, strategy)
			if err != nil {
				return err
			}

			if err := results.WriteJSON(doc, cfg.ResultsJSONPath()); err != nil {
				return err
			}
			if err := results.WriteText(doc, cfg.ResultsTextPath()); err != nil {
				return err
			}
			logger.Info("results written",
				zap.String("json", cfg.ResultsJSONPath()),
				zap.String("text", cfg.ResultsTextPath()))

			return persistRun(run, doc)
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", string(aggregate.StrategyWeighted),
		"candidate ranking strategy (most_frequent, longest, highest_retweet, weighted, combined)")
	return cmd
}

func runExtraction(cmd *cobra.Command, run *corpusRun, strategy aggregate.Strategy) (*results.Document, error) {
	ctx := cmd.Context()
	ex := cfg.Extract
	workers := cfg.Corpus.Workers
	awards := cfg.Ceremony.TemplateAwards
	tweetAwards := run.groups.TweetAwards()

	doc := results.NewDocument(cfg.Ceremony.Year, awards)

	hostExt := extract.NewHostExtractor(ex.HostMinMentions, ex.HostTopN, workers)
	hosts, err := hostExt.Extract(ctx, run.groups.Group(pipeline.GroupHost))
	if err != nil {
		return nil, err
	}
	doc.Hosts = hosts
	doc.HostCandidates = rankPersons(strategy, run.groups.Group(pipeline.GroupHost), candidateDepth)
	logger.Info("hosts extracted", zap.Strings("hosts", hosts))

	awardExt := extract.NewAwardExtractor(ex.AwardMinMentions, ex.AwardClusterSim, cfg.Ceremony.ExpectedAwardCount)
	doc.Discovered = awardExt.Extract(run.groups.Group(pipeline.GroupWin), tweetAwards)
	logger.Info("awards discovered", zap.Int("count", len(doc.Discovered)))

	winnerExt := extract.NewWinnerExtractor(ex.WinnerMinMentions, workers)
	winners, err := winnerExt.Extract(ctx, run.groups.Group(pipeline.GroupWin), awards, tweetAwards, hosts)
	if err != nil {
		return nil, err
	}

	nomineeExt := extract.NewNomineeExtractor(ex.NomineeMinMentions, ex.NomineeTopN, workers)
	nominees, err := nomineeExt.Extract(ctx, run.groups.Group(pipeline.GroupNominee), awards, tweetAwards, winners)
	if err != nil {
		return nil, err
	}

	presenterExt := extract.NewPresenterExtractor(ex.PresenterMinMentions, ex.PresenterTopN, workers)
	presenters, err := presenterExt.Extract(ctx, run.groups.Group(pipeline.GroupPresenter), awards, tweetAwards, winners)
	if err != nil {
		return nil, err
	}

	for _, award := range awards {
		doc.ByAward[award] = results.AwardResult{
			Winner:              winners[award],
			WinnerCandidates:    winnerExt.Candidates(award, candidateDepth),
			Nominees:            nominees[award],
			NomineeCandidates:   nomineeExt.Candidates(award, candidateDepth),
			Presenters:          presenters[award],
			PresenterCandidates: presenterExt.Candidates(award, candidateDepth),
		}
	}

	extrasExt := extract.NewExtrasExtractor(strategy, ex.ExtrasMinMentions, workers)
	extras, err := extrasExt.Extract(ctx, run.kept)
	if err != nil {
		return nil, err
	}
	doc.Extras = extras
	doc.ExtraCandidates = extrasExt.AllCandidates(candidateDepth)

	return doc, nil
}

// rankPersons ranks the people named in a tweet group under the configured
// aggregation strategy, letting retweet weight break up pure mention counts.
func rankPersons(strategy aggregate.Strategy, tweets []tweet.Tweet, n int) []string {
	agg := aggregate.New(strategy)
	for _, t := range tweets {
		for _, p := range nlp.Persons(t.Text) {
			if extract.LooksLikePerson(p) {
				agg.Observe(nlp.Normalize(p), t.Retweets)
			}
		}
	}
	stats := agg.Stats()
	logger.Debug("ranked host candidates",
		zap.Int("candidates", stats.Candidates),
		zap.Int("mentions", stats.Observations),
		zap.String("top", stats.Top))
	return agg.Names(n, 0)
}

func persistRun(run *corpusRun, doc *results.Document) error {
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
	if err := db.SaveGroups(rec.ID, run.groupCounts()); err != nil {
		return err
	}
	data, err := doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("marshal results for store: %w", err)
	}
	if err := db.SaveResults(rec.ID, cfg.Ceremony.Year, data); err != nil {
		return err
	}
	return db.FinishRun(rec, len(run.kept))
}
