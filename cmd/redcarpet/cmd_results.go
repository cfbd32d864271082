package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"redcarpet/internal/extract"
	"redcarpet/internal/results"
	"redcarpet/internal/store"
)

func newResultsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "results [field]",
		Short:     "Print the extracted results",
		ValidArgs: []string{"hosts", "awards", "winners", "nominees", "presenters", "extras"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `Results prints the human-readable report from the last extraction. A field
argument (hosts, awards, winners, nominees, presenters, extras) narrows the
output to that answer. With --json the raw flat JSON document is printed
instead. When the results file is missing, the latest run stored in the
database is used and the file is rewritten from it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadResults()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return printField(doc, args[0])
			}
			if asJSON {
				data, err := doc.MarshalIndent()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Print(results.FormatText(doc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw JSON document")
	return cmd
}

func printField(doc *results.Document, field string) error {
	switch field {
	case "hosts":
		for _, h := range doc.Hosts {
			fmt.Println(h)
		}
	case "awards":
		for _, a := range doc.Discovered {
			fmt.Println(a)
		}
	case "winners":
		for _, award := range doc.Awards {
			fmt.Printf("%s: %s\n", award, doc.ByAward[award].Winner)
		}
	case "nominees":
		for _, award := range doc.Awards {
			fmt.Printf("%s: %s\n", award, strings.Join(doc.ByAward[award].Nominees, ", "))
		}
	case "presenters":
		for _, award := range doc.Awards {
			fmt.Printf("%s: %s\n", award, strings.Join(doc.ByAward[award].Presenters, ", "))
		}
	case "extras":
		for _, goal := range extract.Goals {
			fmt.Printf("%s: %s\n", goal, doc.Extras[goal])
		}
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// loadResults reads the results file, falling back to the database when the
// file is gone but a run survived.
func loadResults() (*results.Document, error) {
	reader := results.OpenReader(cfg.ResultsJSONPath(), cfg.Ceremony.Year, cfg.Ceremony.TemplateAwards)
	doc, err := reader.Document()
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, results.ErrNotExtracted) || cfg.Store.DatabasePath == "" {
		return nil, err
	}

	db, dbErr := store.Open(cfg.Store.DatabasePath)
	if dbErr != nil {
		return nil, err
	}
	defer db.Close()

	data, dbErr := db.LatestResults(cfg.Ceremony.Year)
	if errors.Is(dbErr, store.ErrNoRuns) {
		return nil, err
	}
	if dbErr != nil {
		return nil, dbErr
	}

	doc, parseErr := results.Parse(cfg.Ceremony.Year, cfg.Ceremony.TemplateAwards, data)
	if parseErr != nil {
		return nil, parseErr
	}
	fmt.Fprintf(os.Stderr, "results file missing, restored from database\n")
	if err := results.WriteJSON(doc, cfg.ResultsJSONPath()); err != nil {
		return nil, err
	}
	return doc, nil
}
