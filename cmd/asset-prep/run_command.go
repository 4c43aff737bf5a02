package main

import (
	"github.com/spf13/cobra"

	"asset-prep/internal/config"
)

func newRunCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: catalog, then thumbnails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			if err := runCatalog(cmd, cfg); err != nil {
				return err
			}
			return runThumbnails(cmd, cfg)
		},
	}
}
