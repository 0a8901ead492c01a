package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zoobzio/exprql/internal/cli"
)

var sqlColor = color.New(color.FgCyan)

// statementFlags are shared by render and query.
var statementFlags cli.StatementOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a SELECT statement to SQL",
	Example: `  exprql render --table users --field id --where "users.id = :id" --param id=4
  exprql render --dialect postgres --table users --limit 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := statementFlags.Build()
		if err != nil {
			return cli.GeneralError("building statement", err)
		}
		sql, err := stmt.Render(cfg.DialectValue())
		if err != nil {
			return cli.GeneralError("rendering statement", err)
		}
		sqlColor.Fprintln(cmd.OutOrStdout(), sql)
		return nil
	},
}

func addStatementFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&statementFlags.Table, "table", "", "table to select from")
	cmd.Flags().StringArrayVar(&statementFlags.Fields, "field", nil, "field to select (repeatable; default all)")
	cmd.Flags().StringVar(&statementFlags.Where, "where", "", "WHERE condition, e.g. \"users.id = :id\"")
	cmd.Flags().StringArrayVar(&statementFlags.Params, "param", nil, "parameter as name=value (repeatable)")
	cmd.Flags().IntVar(&statementFlags.Limit, "limit", -1, "maximum number of rows")
	_ = cmd.MarkFlagRequired("table")
}

func init() {
	addStatementFlags(renderCmd)
}
