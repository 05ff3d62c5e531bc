// Command nutdeck builds the Nutshell pitch deck (.pptx).
//
// Run without arguments to write the eight-slide deck to
// Nutshell_HackJNU4_Presentation.pptx in the current directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shashikant800/Hands-Free-Web/config"
	"github.com/shashikant800/Hands-Free-Web/i18n"
	"github.com/shashikant800/Hands-Free-Web/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	logDir     string
	language   string

	cfg *config.Config
	log *logger.Logger
	tr  *i18n.Translator
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		if a.log != nil {
			a.log.Zap().Error("command failed", zap.Error(err))
			a.log.Close()
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	build := &buildOptions{}

	rootCmd := &cobra.Command{
		Use:   "nutdeck",
		Short: "Generate the Nutshell hackathon presentation",
		Long: `nutdeck writes the eight-slide Nutshell pitch deck as a PowerPoint file.

Run without arguments to build the deck to the default path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: build the deck
			return runBuild(cmd, a, build)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logDir, "log-dir", "", "Directory for per-run log files")
	rootCmd.PersistentFlags().StringVar(&a.language, "lang", "", "Console language (English, 简体中文)")
	build.bind(rootCmd)

	rootCmd.AddCommand(
		newBuildCmd(a),
		newInspectCmd(a),
		newDumpCmd(a),
		newRenderCmd(a),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides, and starts logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = a.logDir
	}
	if flags.Changed("lang") {
		cfg.Language = a.language
	}
	a.cfg = cfg

	a.log, err = logger.NewLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	if cfg.LogDir != "" {
		if err := a.log.Init(cfg.LogDir); err != nil {
			return err
		}
	}

	i18n.SetLanguage(i18n.Language(cfg.Language))
	a.tr = i18n.GetTranslator()
	return nil
}
