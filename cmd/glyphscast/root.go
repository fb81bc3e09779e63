package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/glyphscast/config"
	"github.com/reoring/glyphscast/i18n"
)

// options holds the flags shared by every subcommand.
type options struct {
	cfgFile  string
	logLevel string
}

// newRootCmd builds the command tree. It is a constructor rather than a
// package variable so tests get fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "glyphscast",
		Short: "Cast the string fields of a Glyphs font source to typed values",
		Long: `glyphscast reads a .glyphs file (OpenStep property list), or the same
tree written as JSON or YAML, and converts every known field to its typed
value: numbers, booleans, points, transforms, outline nodes, dates and
kerning tables.

Examples:
  glyphscast cast MyFont.glyphs
  glyphscast cast --format yaml MyFont.glyphs
  glyphscast schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "glyphscast.yaml", "config file path")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(newCastCmd(opts))
	root.AddCommand(newSchemaCmd())
	return root
}

// setup loads configuration and builds the logger for a command run.
func (o *options) setup(stderr io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, zerolog.Nop(), err
		}
	}
	i18n.SetLanguage(cfg.Language)
	logger := zerolog.New(stderr).With().Timestamp().Logger().Level(cfg.LogLevel())
	return cfg, logger, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
