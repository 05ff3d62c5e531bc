package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashikant800/Hands-Free-Web/export"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.pptx>",
		Short: "List the slides and texts of a .pptx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := export.InspectPPT(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.tr.T("deck.inspect_header", summary.Path, len(summary.Slides)))
			for _, s := range summary.Slides {
				fmt.Fprintln(out, a.tr.T("deck.inspect_slide", s.Index, s.Shapes))
				for _, text := range s.Texts {
					fmt.Fprintf(out, "  %s\n", text)
				}
			}
			return nil
		},
	}
}
