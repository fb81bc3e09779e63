package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/glyphscast/glyphs"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the fields cast for a .glyphs document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), glyphs.Describe(glyphs.FontSchema()))
			return err
		},
	}
}
