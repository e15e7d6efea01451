package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/pkg/config"
	"github.com/joeblew999/templateforge/pkg/curate"
	"github.com/joeblew999/templateforge/pkg/log"
	"github.com/joeblew999/templateforge/pkg/mjml"
	"github.com/joeblew999/templateforge/pkg/tokenize"
)

func newTokenizeCmd() *cobra.Command {
	var (
		indexPath string
		dir       string
		outDir    string
		limit     int
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Replace colors and fonts in curated templates with brand tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if indexPath == "" {
				indexPath = filepath.Join(config.GetIndexPath(), config.CuratedIndexName(curate.DefaultTopN))
			}
			if dir == "" {
				dir = config.GetCompiledPath()
			}
			if outDir == "" {
				outDir = filepath.Join(config.GetDataPath(), "tokenized")
			}

			items, err := curate.ReadIndex(indexPath)
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(items) {
				items = items[:limit]
			}

			compiler := mjml.NewCompiler(mjml.WithCache(true))
			defer compiler.Stop()

			entries, stats, err := tokenize.NewRunner(compiler, workers).Run(cmd.Context(), dir, outDir, items)
			if err != nil {
				return err
			}

			out := filepath.Join(outDir, tokenize.IndexName)
			if err := tokenize.WriteIndex(out, entries); err != nil {
				return err
			}

			log.Info("tokenize complete",
				"processed", stats.Processed,
				"tokenized", stats.Tokenized,
				"errored", stats.Errored,
			)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Tokenized %d of %d templates (%d errored)\n", stats.Tokenized, stats.Processed, stats.Errored)
			fmt.Fprintf(w, "Index: %s\n", out)

			counts := make(map[string]int)
			for _, e := range entries {
				for _, c := range e.Categories {
					counts[c]++
				}
			}
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(w, "  %s: %d\n", name, counts[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "curated index to read (default $INDEX_PATH/curated_top300.json)")
	cmd.Flags().StringVar(&dir, "dir", "", "compiled corpus directory (default $COMPILED_PATH)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default $DATA_PATH/tokenized)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "tokenize at most this many templates (0 = all)")
	cmd.Flags().IntVar(&workers, "workers", 8, "parallel file workers")
	return cmd
}
