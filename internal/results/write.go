package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"redcarpet/internal/extract"
	"redcarpet/internal/logging"
	"redcarpet/internal/nlp"
)

// Unknown marks a field the extraction could not fill.
const Unknown = "UNKNOWN"

var titleCaser = cases.Title(language.English)

// WriteJSON writes the flat document as indented JSON at path, creating
// parent directories as needed.
func WriteJSON(d *Document, path string) error {
	data, err := d.MarshalIndent()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("results: create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	logging.Get(logging.CategoryResults).Info("wrote JSON results to %s", path)
	return nil
}

// WriteText writes the human-readable report at path. Names are title
// cased, empty fields read UNKNOWN, and the lifetime achievement award
// skips its nominee line since it never has nominees.
func WriteText(d *Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("results: create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(FormatText(d)), 0o644); err != nil {
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	logging.Get(logging.CategoryResults).Info("wrote text results to %s", path)
	return nil
}

// FormatText renders the human-readable report.
func FormatText(d *Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Golden Globes %s\n\n", d.Year)
	fmt.Fprintf(&b, "Host: %s\n\n", displayList(d.Hosts))

	for _, award := range d.Awards {
		r := d.ByAward[award]
		fmt.Fprintf(&b, "Award: %s\n", titleCaser.String(award))
		fmt.Fprintf(&b, "Presenters: %s\n", displayList(r.Presenters))
		if award != nlp.CecilAward {
			fmt.Fprintf(&b, "Nominees: %s\n", displayList(r.Nominees))
		}
		fmt.Fprintf(&b, "Winner: %s\n\n", display(r.Winner))
	}

	for _, goal := range extract.Goals {
		if pick, ok := d.Extras[goal]; ok {
			fmt.Fprintf(&b, "%s: %s\n", titleCaser.String(goal), display(pick))
		}
	}
	return b.String()
}

func display(name string) string {
	if name == "" {
		return Unknown
	}
	return titleCaser.String(name)
}

func displayList(names []string) string {
	if len(names) == 0 {
		return Unknown
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = titleCaser.String(n)
	}
	return strings.Join(out, ", ")
}
