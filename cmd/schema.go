package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var schemaMigrate bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Verify the event store schema",
	Long: `Check that every table the tracker reads carries its expected columns.
With --migrate, missing tables and columns are created first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			if schemaMigrate {
				if err := a.store.AutoMigrate(cmd.Context()); err != nil {
					return err
				}
				a.log.Info("Schema migrated", zap.String("driver", a.cfg.Database.Driver))
			}

			issues, err := a.store.VerifySchema(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(w, "Schema OK")
				return nil
			}

			heading(w, "Schema Issues")
			for _, issue := range issues {
				fmt.Fprintf(w, "%s: missing %s\n", issue.Table, strings.Join(issue.Missing, ", "))
			}
			return fmt.Errorf("schema has %d incomplete table(s), run with --migrate to fix", len(issues))
		})
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaMigrate, "migrate", false, "Create missing tables and columns")
	RootCmd.AddCommand(schemaCmd)
}
