package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asset-prep/internal/catalog"
	"asset-prep/internal/config"
)

func newCatalogCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Copy sources to canonical names and write the JSON manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			return runCatalog(cmd, cfg)
		},
	}
}

func runCatalog(cmd *cobra.Command, cfg *config.Config) error {
	setupVips()

	entries, err := config.LoadMapping(cfg.MappingPath)
	if err != nil {
		return err
	}

	manifest, err := catalog.NewBuilder(cfg, entries).Build(cmd.Context())
	if err != nil {
		return err
	}

	if err := manifest.Save(cfg.ManifestPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderCatalogSummary(manifest))
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest written to %s\n", cfg.ManifestPath)
	return nil
}
