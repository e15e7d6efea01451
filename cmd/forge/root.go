// forge scores, validates, auto-fixes, generates and curates HTML email
// templates.
//
// Usage:
//
//	forge score <file|-> [--fix] [--json]
//	forge validate <file...>
//	forge fix <file|-> [-o out]
//	forge generate [--type=<id>] [--skin=<id>] [-o batch.json]
//	forge curate [--dir=<compiled>] [--top=300]
//	forge tokenize [--index=<curated.json>] [--out=<dir>]
//	forge skins | types
//	forge mcp
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/internal/mcp"
	"github.com/joeblew999/templateforge/pkg/config"
	"github.com/joeblew999/templateforge/pkg/forge"
	"github.com/joeblew999/templateforge/pkg/log"
	"github.com/joeblew999/templateforge/pkg/skin"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "forge",
		Short: "Score, fix and curate HTML email templates",
		Long: "forge scores HTML email templates from 0 to 100 across six dimensions,\n" +
			"applies safe auto-fixes, generates templates from a section library,\n" +
			"curates a compiled corpus down to its best unique layouts and\n" +
			"rewrites the survivors onto brand tokens.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.Setup(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Version = version

	root.AddCommand(
		newScoreCmd(),
		newValidateCmd(),
		newFixCmd(),
		newGenerateCmd(),
		newCurateCmd(),
		newTokenizeCmd(),
		newSkinsCmd(),
		newTypesCmd(),
		newMCPCmd(),
	)
	return root
}

// loadGenerator builds a generator from the built-in registry plus any
// skins named by SKINS_PATH.
func loadGenerator() (*forge.Generator, error) {
	skins := skin.Builtin()
	if path := config.GetSkinsPath(); path != "" {
		var err error
		if skins, err = skin.LoadFile(path, skins); err != nil {
			return nil, err
		}
	}
	return forge.NewGenerator(nil, skins), nil
}

func main() {
	mcp.Version = version
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
