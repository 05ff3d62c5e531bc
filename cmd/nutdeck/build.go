package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shashikant800/Hands-Free-Web/deck"
	"github.com/shashikant800/Hands-Free-Web/export"
)

type buildOptions struct {
	output   string
	deckFile string
}

func (o *buildOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output .pptx path")
	cmd.Flags().StringVar(&o.deckFile, "deck", "", "YAML deck descriptor to build instead of the built-in deck")
}

func newBuildCmd(a *app) *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the deck and save it as .pptx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, a, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runBuild(cmd *cobra.Command, a *app, opts *buildOptions) error {
	if cmd.Flags().Changed("output") {
		a.cfg.OutputPath = opts.output
	}
	if cmd.Flags().Changed("deck") {
		a.cfg.DeckFile = opts.deckFile
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.tr.T("deck.creating"))

	d, err := a.loadDeck(cmd)
	if err != nil {
		return err
	}

	a.log.Logf("building %d slides to %s", len(d.Slides), a.cfg.OutputPath)
	svc := export.NewPPTExportService(a.log.Named("export"))
	if err := svc.SaveDeck(d, a.cfg.OutputPath); err != nil {
		return err
	}

	fmt.Fprintln(out, a.tr.T("deck.saved", a.cfg.OutputPath))
	fmt.Fprintln(out, a.tr.T("deck.total_slides", len(d.Slides)))
	return nil
}

// loadDeck returns the configured deck descriptor, or the built-in Nutshell deck.
func (a *app) loadDeck(cmd *cobra.Command) (*deck.Deck, error) {
	if a.cfg.DeckFile == "" {
		d := deck.Nutshell()
		if err := d.CheckOrder(deck.SlideOrder); err != nil {
			return nil, err
		}
		return d, nil
	}

	d, err := deck.LoadFile(a.cfg.DeckFile)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.tr.T("deck.loaded_custom", a.cfg.DeckFile))
	a.log.Zap().Info("deck loaded", zap.String("file", a.cfg.DeckFile), zap.Int("slides", len(d.Slides)))
	return d, nil
}
