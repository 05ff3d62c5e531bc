package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashikant800/Hands-Free-Web/export"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		dir      string
		width    int
		deckFile string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render PNG previews of every slide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dir") {
				a.cfg.PreviewDir = dir
			}
			if cmd.Flags().Changed("width") {
				a.cfg.PreviewWidth = width
			}
			if cmd.Flags().Changed("deck") {
				a.cfg.DeckFile = deckFile
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			d, err := a.loadDeck(cmd)
			if err != nil {
				return err
			}

			svc := export.NewPPTExportService(a.log.Named("render"))
			paths, err := svc.RenderPreviews(d, a.cfg.PreviewDir, a.cfg.PreviewWidth)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), a.tr.T("deck.preview_saved", p))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for slide-NN.png files")
	cmd.Flags().IntVar(&width, "width", 0, "Preview width in pixels")
	cmd.Flags().StringVar(&deckFile, "deck", "", "YAML deck descriptor to render instead of the built-in deck")
	return cmd
}
