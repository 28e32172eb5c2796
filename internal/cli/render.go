package cli

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/fairyhunter13/product-pages/internal/config"
	"github.com/fairyhunter13/product-pages/internal/route"
	"github.com/fairyhunter13/product-pages/internal/view"
)

func newRenderCmd(configPath *string) *cobra.Command {
	var layout bool

	cmd := &cobra.Command{
		Use:   "render <productid>",
		Short: "Render the product detail page to stdout",
		Example: `  # Print the heading fragment
  product-pages render 42

  # Print the full document
  product-pages render 42 --layout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(*configPath)
			if err != nil {
				return err
			}
			h, err := view.ProductDetails(cmd.Context(), route.Resolved(view.ProductParams{ProductID: args[0]}))
			if err != nil {
				return err
			}
			var c templ.Component = h
			if layout {
				c = view.Layout(cfg.SiteTitle, h)
			}
			if err := c.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&layout, "layout", false, "wrap the fragment in the document layout")
	return cmd
}
