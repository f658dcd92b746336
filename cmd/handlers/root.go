package handlers

import (
	"fmt"
	"strings"

	"maliyet/internal/config"
	"maliyet/internal/logger"
	"maliyet/internal/render"

	"github.com/spf13/cobra"
)

// rootOptions carries global flags and the configuration they resolve to.
type rootOptions struct {
	configFile string
	format     string
	logLevel   string
	noColor    bool

	cfg *config.Config
}

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "maliyet",
		Short: "Product category options and badge classes",
		Long: `Maliyet category tool.

Lists the fixed product categories and resolves free-form category labels
to the CSS badge classes used to style them.

Examples:
  # List the category options
  maliyet categories

  # Resolve labels to badge classes
  maliyet badge Metal " AHŞAP " cam

  # Choose a category from an interactive list
  maliyet pick

  # Resolve one label per line from stdin
  cut -d, -f3 urunler.csv | maliyet badge --format plain`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./.maliyet.yaml or $HOME/.maliyet.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format: table, json or plain")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored badges")

	rootCmd.AddCommand(NewCategoriesCmd(opts))
	rootCmd.AddCommand(NewBadgeCmd(opts))
	rootCmd.AddCommand(NewPickCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// load loads configuration, applies flag overrides and configures logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(o.format))
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(o.logLevel))
	}
	if o.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Configure(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}
	logger.Debug("Configuration loaded", "output_format", cfg.Output.Format, "color", cfg.Output.Color)

	o.cfg = cfg
	return nil
}

func (o *rootOptions) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	format, err := render.ParseFormat(o.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return render.New(cmd.OutOrStdout(), format, o.cfg.Output.Color), nil
}
