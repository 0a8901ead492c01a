package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/zoobzio/exprql/internal/cli"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a SELECT statement and print the rows as YAML",
	Long: `Run a SELECT statement against the configured database.

Each row is printed as a mapping keyed by the selected field names.`,
	Example: `  exprql query --dialect sqlite --dsn app.db --table users --field id --field login
  exprql query --table orders --where "orders.total > :min" --param min=100`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := statementFlags.Build()
		if err != nil {
			return cli.GeneralError("building statement", err)
		}

		ctx := cmd.Context()
		db, err := cli.Open(cfg.DialectValue(), cfg.Database.DSN, logger)
		if err != nil {
			return cli.DBConnectError("opening database", err)
		}
		defer db.Close()

		if err := db.Ping(ctx); err != nil {
			return cli.DBConnectError("connecting to database", err)
		}

		rows, err := stmt.Execute(ctx, db)
		if err != nil {
			return cli.GeneralError("executing statement", err)
		}
		defer rows.Close()

		out := []map[string]any{}
		for row := range rows.All() {
			out = append(out, row.Map())
		}
		if err := rows.Err(); err != nil {
			return cli.GeneralError("reading rows", err)
		}

		data, err := yaml.Marshal(out)
		if err != nil {
			return cli.GeneralError("encoding rows", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	addStatementFlags(queryCmd)
}
