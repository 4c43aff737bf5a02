package main

import (
	"github.com/spf13/cobra"

	"asset-prep/internal/logging"
	"asset-prep/internal/media"
)

// setupVips readies libvips for the capability decode probes. Every
// pipeline subcommand calls it; initialization happens at most once and
// teardown belongs to main, so the library is never restarted mid-process.
func setupVips() {
	if err := media.InitVips(); err != nil {
		logging.Warn("libvips unavailable, HEIC decoding limited: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	rootCmd := &cobra.Command{
		Use:           "asset-prep",
		Short:         "Prepare sample images: canonical catalog plus derived thumbnails",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				logging.SetLevel(logging.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.toml", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCatalogCommand(&configFlag))
	rootCmd.AddCommand(newThumbnailsCommand(&configFlag))
	rootCmd.AddCommand(newRunCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
