package main

import (
	"fmt"
	"io"
	"os"
	"time"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	glyphscast "github.com/reoring/glyphscast"
	"github.com/reoring/glyphscast/glyphs"
	"github.com/reoring/glyphscast/source"
)

type castFlags struct {
	format string
	pretty bool
	input  string
}

func newCastCmd(opts *options) *cobra.Command {
	f := &castFlags{}
	cmd := &cobra.Command{
		Use:   "cast FILE",
		Short: "Load a font source, cast its fields and print the result",
		Long: `Load a font source, cast its fields and print the result.

The input format is taken from the extension (.glyphs, .plist, .json,
.yaml, .yml) unless --input is given. On failure the offending field is
reported as a JSON Pointer, e.g. /fontMaster/0/descender.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCast(cmd, opts, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: json or yaml (overrides config)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().StringVar(&f.input, "input", "", "input format: plist, json or yaml")
	return cmd
}

func runCast(cmd *cobra.Command, opts *options, f *castFlags, path string) error {
	cfg, logger, err := opts.setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.pretty {
		cfg.Output.Pretty = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	var data map[string]any
	if f.input != "" {
		data, err = loadAs(source.Format(f.input), path)
	} else {
		data, err = source.Load(path)
	}
	if err != nil {
		if iss, ok := glyphscast.AsIssues(err); ok && iss.HasCode(glyphscast.CodeParseError) {
			logger.Error().Str("file", path).Str("input", iss[0].Hint).Err(iss[0].Cause).Msg("decode failed")
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug().Str("path", path).Dur("elapsed", time.Since(start)).Msg("source decoded")

	if err := glyphs.CastDocument(data, glyphscast.WithLogger(logger)); err != nil {
		if iss, ok := glyphscast.AsIssues(err); ok {
			logger.Error().Str("file", path).Str("field", iss[0].Path).Str("code", iss[0].Code).Msg("cast failed")
		}
		return fmt.Errorf("cast %s: %w", path, err)
	}
	logger.Info().Str("path", path).Dur("elapsed", time.Since(start)).Msg("cast complete")

	return write(cmd.OutOrStdout(), data, cfg.Output.Format, cfg.Output.Pretty)
}

func loadAs(format source.Format, path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return source.Decode(format, b)
}

func write(w io.Writer, data map[string]any, format string, pretty bool) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml":
		out, err = yaml.Marshal(data)
	default:
		if pretty {
			out, err = j.MarshalIndent(data, "", "  ")
		} else {
			out, err = j.Marshal(data)
		}
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}
