package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/pkg/config"
	"github.com/joeblew999/templateforge/pkg/curate"
	"github.com/joeblew999/templateforge/pkg/log"
	"github.com/joeblew999/templateforge/pkg/mjml"
)

func newCurateCmd() *cobra.Command {
	var (
		dir     string
		outDir  string
		topN    int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Score a compiled corpus, drop layout duplicates and keep the top N",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = config.GetCompiledPath()
			}
			if outDir == "" {
				outDir = config.GetIndexPath()
			}

			compiler := mjml.NewCompiler(mjml.WithCache(true))
			defer compiler.Stop()

			items, stats, err := curate.NewScanner(compiler, workers).Scan(cmd.Context(), dir)
			if err != nil {
				return err
			}

			scoredPath := filepath.Join(outDir, config.ScoredIndexName)
			if err := curate.WriteIndex(scoredPath, items); err != nil {
				return err
			}

			result := curate.Curate(items, topN)
			curatedPath := filepath.Join(outDir, config.CuratedIndexName(topN))
			if err := curate.WriteIndex(curatedPath, result.Items); err != nil {
				return err
			}

			log.Info("curation complete",
				"processed", stats.Processed,
				"errored", stats.Errored,
				"unsigned", result.Unsigned,
				"unique", result.Deduped,
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed %d files (%d scored, %d errored)\n", stats.Processed, stats.Scored, stats.Errored)
			fmt.Fprintf(out, "Unique layouts: %d (%d without a structure signature dropped)\n", result.Deduped, result.Unsigned)
			fmt.Fprintf(out, "Curated: %d -> %s\n", len(result.Items), curatedPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "compiled corpus directory (default $COMPILED_PATH)")
	cmd.Flags().StringVar(&outDir, "out", "", "index output directory (default $INDEX_PATH)")
	cmd.Flags().IntVar(&topN, "top", curate.DefaultTopN, "number of templates to keep")
	cmd.Flags().IntVar(&workers, "workers", 8, "parallel file workers")
	return cmd
}
