package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/exprql"
	"github.com/zoobzio/exprql/internal/parse"
)

var literalCmd = &cobra.Command{
	Use:   "literal VALUE...",
	Short: "Print the SQL literal for each value",
	Long: `Print the SQL literal for each value in the selected dialect.

Values are read like condition literals: numbers, 'quoted strings', NULL,
TRUE, and FALSE. Anything else is treated as text.`,
	Example: `  exprql literal --dialect mysql "O'Reilly" 42 TRUE`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := cfg.DialectValue()
		for _, arg := range args {
			v, err := parse.Value(arg)
			if err != nil {
				v = arg
			}
			lit, err := exprql.RenderLiteral(v, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lit)
		}
		return nil
	},
}
