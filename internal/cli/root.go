// Package cli wires the product-pages command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fairyhunter13/product-pages/internal/config"
)

// NewRootCmd builds the root command. Running it without a subcommand serves.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "product-pages",
		Short:        "Serve server-rendered product pages",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file; environment variables take precedence")

	root.AddCommand(newServeCmd(&configPath), newRenderCmd(&configPath))
	return root
}
