package main

import (
	"github.com/spf13/cobra"

	"github.com/joeblew999/templateforge/internal/mcp"
	"github.com/joeblew999/templateforge/pkg/log"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the scoring tools over MCP on stdio",
		Long: "Starts an MCP server over stdin/stdout for editor and agent integration.\n" +
			"Scores are not stored; run the server binary for persistence.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := loadGenerator()
			if err != nil {
				return err
			}
			log.Info("starting MCP server over stdio")
			return mcp.NewServer(gen, nil).RunStdio(cmd.Context())
		},
	}
}
