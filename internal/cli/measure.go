package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	equalheight "github.com/grindlemire/go-equalheight"
	"github.com/grindlemire/go-equalheight/internal/config"
)

type measureOptions struct {
	config string
	width  int
	height int
	render bool
}

func newMeasureCmd() *cobra.Command {
	var opts measureOptions

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Reconcile a layout once and print the target heights",
		Long: `Measure loads a layout file, lays it out on a page of the given size,
runs one reconciliation cycle and prints the resulting target table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config)
			if err != nil {
				return err
			}
			if opts.width > 0 {
				cfg.Page.Width = opts.width
			}
			if opts.height > 0 {
				cfg.Page.Height = opts.height
			}

			logger := loggerFromContext(cmd.Context())
			b, err := newBoard(cfg, logger, equalheight.WithTimeout(0))
			if err != nil {
				return err
			}
			logger.Debug("measured", "scope", b.scope.ID(), "cards", len(b.cards), "columns", b.page.Columns())
			b.logMetrics()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, b.targetTable())
			if opts.render {
				fmt.Fprintln(out, b.page.Render())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout file (.toml, .yaml)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "page width in cells (overrides the file)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "page height in cells (overrides the file)")
	cmd.Flags().BoolVar(&opts.render, "render", false, "print the rendered page after the table")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
