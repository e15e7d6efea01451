package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/pkg/autofix"
)

func newFixCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fix <file|->",
		Short: "Apply auto-fixes and write the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			fixed, applied := autofix.Apply(doc)
			if output == "" || output == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), fixed.HTML)
			} else {
				err = os.WriteFile(output, []byte(fixed.HTML), 0o644)
			}
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no fixes needed")
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "applied: %v\n", applied)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
