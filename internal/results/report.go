package results

import (
	"fmt"
	"strings"

	"redcarpet/internal/extract"
	"redcarpet/internal/nlp"
)

// FormatMarkdown renders the document as a markdown report for terminal
// display.
func FormatMarkdown(d *Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Golden Globes %s\n\n", d.Year)
	fmt.Fprintf(&b, "**Hosts:** %s\n\n", displayList(d.Hosts))

	fmt.Fprintf(&b, "## Awards\n\n")
	fmt.Fprintf(&b, "| Award | Winner | Presenters |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	for _, award := range d.Awards {
		r := d.ByAward[award]
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			titleCaser.String(award), display(r.Winner), displayList(r.Presenters))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Nominees\n\n")
	for _, award := range d.Awards {
		if award == nlp.CecilAward {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", titleCaser.String(award), displayList(d.ByAward[award].Nominees))
	}
	b.WriteString("\n")

	hasExtras := false
	for _, goal := range extract.Goals {
		if _, ok := d.Extras[goal]; ok {
			hasExtras = true
			break
		}
	}
	if hasExtras {
		fmt.Fprintf(&b, "## Red Carpet\n\n")
		for _, goal := range extract.Goals {
			if pick, ok := d.Extras[goal]; ok {
				fmt.Fprintf(&b, "- **%s:** %s\n", titleCaser.String(goal), display(pick))
			}
		}
	}
	return b.String()
}
