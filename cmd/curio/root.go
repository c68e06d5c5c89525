package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/curio-ui/curio/internal/config"
	"github.com/curio-ui/curio/internal/logger"
	"github.com/curio-ui/curio/internal/showcase"
)

type rootFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "curio",
		Short: "Curio is an interactive catalog of terminal UI components",
		Long: `Curio renders a themeable widget library in your terminal: typography,
buttons, forms with live validation, cards, charts and list patterns,
all navigable from a single full-screen app.

Run curio with no arguments to open the catalog. Use the gallery
subcommand for a plain, non-interactive dump of every component.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "curio.yaml", "Path to the configuration file")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write debug logs to the configured log file")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newRoutesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runShowcase(flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("curio needs an interactive terminal; try `curio gallery` for plain output")
	}

	log, closeLog, err := newShowcaseLogger(flags, cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	log.WithFields(map[string]any{
		"theme":       cfg.Theme,
		"start_route": cfg.StartRoute,
	}).Info("showcase starting")

	p := tea.NewProgram(showcase.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}

// newShowcaseLogger returns a nil logger unless debugging is on. The
// TUI owns the terminal, so debug output goes to a file instead; the
// nil logger drops everything through its nil-safe methods.
func newShowcaseLogger(flags *rootFlags, cfg *config.Config) (*logger.Logger, func(), error) {
	if !flags.debug && !cfg.Debug {
		return nil, func() {}, nil
	}

	path := cfg.LogFile
	if path == "" {
		path = "curio.log"
	}

	sink, err := logger.FileSink(path)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{Level: "debug", Writer: sink})
	if err != nil {
		sink.Close()
		return nil, nil, err
	}

	return log, func() { sink.Close() }, nil
}
