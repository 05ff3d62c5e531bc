package main

import (
	"github.com/spf13/cobra"

	"github.com/shashikant800/Hands-Free-Web/deck"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the built-in deck descriptor as YAML",
		Long: `Print the built-in deck descriptor as YAML.

The output can be edited and passed back with "nutdeck build --deck".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Log("dumping built-in deck")
			return deck.Nutshell().EncodeYAML(cmd.OutOrStdout())
		},
	}
}
