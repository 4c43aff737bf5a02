package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asset-prep/internal/config"
	"asset-prep/internal/thumbs"
)

func newThumbnailsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbnails",
		Short: "Derive one thumbnail per canonical asset, with fallbacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			return runThumbnails(cmd, cfg)
		},
	}
}

func runThumbnails(cmd *cobra.Command, cfg *config.Config) error {
	setupVips()

	summary, _, err := thumbs.New(cfg).DeriveAll(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderThumbsSummary(summary))

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d assets produced no artifact", summary.Failed, summary.Total())
	}
	return nil
}
