package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/pkg/document"
	"github.com/joeblew999/templateforge/pkg/htmlcheck"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file...>",
		Short: "Validate templates; exits non-zero when any has errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]document.Document, 0, len(args))
			for _, path := range args {
				doc, err := readDocument(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, doc := range docs {
				res := htmlcheck.Validate(doc)
				status := "ok"
				if !res.Valid {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(out, "%s: %s (%d errors, %d warnings)\n", doc.ID, status, len(res.Errors), len(res.Warnings))
				for _, e := range res.Errors {
					fmt.Fprintf(out, "  error: %s\n", e)
				}
				for _, w := range res.Warnings {
					fmt.Fprintf(out, "  warning: %s\n", w)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d templates failed validation", failed, len(docs))
			}
			return nil
		},
	}
}
