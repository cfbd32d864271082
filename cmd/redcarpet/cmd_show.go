package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"redcarpet/internal/results"
)

func newShowCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the results as a styled terminal report",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadResults()
			if err != nil {
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := renderer.Render(results.FormatMarkdown(doc))
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "wrap width for the rendered report")
	return cmd
}
