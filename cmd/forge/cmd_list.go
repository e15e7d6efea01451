package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSkinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skins",
		Short: "List design skins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := loadGenerator()
			if err != nil {
				return err
			}
			for _, s := range gen.Skins.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-18s bg=%s primary=%s text=%s\n", s.ID, s.Name, s.BG, s.Primary, s.Text)
			}
			return nil
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List template types and their sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := loadGenerator()
			if err != nil {
				return err
			}
			for _, t := range gen.Registry.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-12s %s\n", t.ID, t.Category, strings.Join(t.Sections, ","))
			}
			return nil
		},
	}
}
