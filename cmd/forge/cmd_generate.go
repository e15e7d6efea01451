package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/pkg/config"
	"github.com/joeblew999/templateforge/pkg/forge"
)

func newGenerateCmd() *cobra.Command {
	var (
		typeID  string
		skinID  string
		variant int
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate templates from the section library",
		Long: "With --type, renders one template as HTML. Without it, runs the full\n" +
			"pipeline (every type, every skin, layout variants), auto-fixes and\n" +
			"scores the results and writes the batch as JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := loadGenerator()
			if err != nil {
				return err
			}

			if typeID != "" {
				var tpl forge.Template
				if variant == 0 {
					tpl, err = gen.Generate(typeID, skinID)
				} else {
					tpl, err = gen.LayoutVariant(typeID, variant, skinID)
				}
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					_, err = fmt.Fprint(cmd.OutOrStdout(), tpl.HTML)
					return err
				}
				return os.WriteFile(output, []byte(tpl.HTML), 0o644)
			}

			opts := forge.DefaultOptions()
			if skinID != "" {
				opts.BaseSkin = skinID
			}
			if workers > 0 {
				opts.Workers = workers
			}

			batch, err := forge.Run(cmd.Context(), gen, opts)
			if err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(config.GetDataPath(), "generated", "templates.json")
			}
			if err := forge.WriteBatch(output, batch); err != nil {
				return err
			}

			md := batch.Metadata
			fmt.Fprintf(cmd.OutOrStdout(), "%d templates written to %s (pass %d, retry %d, drop %d)\n",
				md.TotalTemplates, output, md.Passed, md.NeedsRetry, md.Dropped)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeID, "type", "", "render a single template type")
	cmd.Flags().StringVar(&skinID, "skin", "", "skin id (default apple_light)")
	cmd.Flags().IntVar(&variant, "variant", 0, "layout variant 1-3 for --type")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().IntVar(&workers, "workers", 0, "scoring workers for the full pipeline")
	return cmd
}
