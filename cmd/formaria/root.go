package main

import (
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formaria/internal/logging"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
	noColor    bool

	// resolved in PersistentPreRunE
	cfg    config
	logger zerolog.Logger
	driver PromptDriver
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithDriver(newSurveyDriver())
}

func newRootCmdWithDriver(driver PromptDriver) *cobra.Command {
	flags := &rootFlags{driver: driver, logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "formaria",
		Short:         "Render accessible forms and inspect their ARIA wiring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.init()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a formaria.yaml config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colourised output")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newIDsCmd())
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) init() error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	f.cfg = cfg

	if f.noColor {
		color.NoColor = true
	}

	level := cfg.LogLevel
	if f.logLevel != "" {
		level = f.logLevel
	}
	if f.verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}
	f.logger = logger
	return nil
}
