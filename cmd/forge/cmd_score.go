package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/internal/logic/shared"
	"github.com/joeblew999/templateforge/internal/types"
	"github.com/joeblew999/templateforge/internal/worker"
)

func newScoreCmd() *cobra.Command {
	var (
		fix    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "score <file|->",
		Short: "Score a template and print its breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			ev := worker.Evaluate(doc, fix)
			out := cmd.OutOrStdout()

			if asJSON {
				resp := types.ScoreResponse{
					Score:         shared.ScoreCard(ev.Score),
					Validation:    shared.Validation(ev.Validation),
					AutoFixed:     ev.Document.AutoFixed,
					AppliedFixes:  ev.AppliedFixes,
					ContentHash:   ev.ContentHash,
					StructureHash: ev.StructureHash,
				}
				if resp.AppliedFixes == nil {
					resp.AppliedFixes = []string{}
				}
				return writeJSON(out, resp)
			}

			rec := ev.Score
			fmt.Fprintf(out, "%s: %d/100 grade %s\n", doc.Label(), rec.Total, rec.Grade)
			for _, name := range []string{"hierarchy", "responsiveness", "code_safety", "aesthetics", "contrast", "tokenization"} {
				fmt.Fprintf(out, "  %-15s %d\n", name, rec.Breakdown()[name])
			}
			switch {
			case rec.PassesThreshold:
				fmt.Fprintln(out, "  status          pass")
			case rec.NeedsRetry:
				fmt.Fprintln(out, "  status          retry")
			default:
				fmt.Fprintln(out, "  status          drop")
			}
			for _, d := range rec.Deductions {
				fmt.Fprintf(out, "  - %s\n", d)
			}
			if len(ev.AppliedFixes) > 0 {
				fmt.Fprintf(out, "  fixes applied: %v\n", ev.AppliedFixes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "auto-fix before scoring")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
