package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"rail-sqlgen/internal/engine"
)

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Generate audit log tables and INSERT/UPDATE/DELETE triggers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := GetDialect()
		if err != nil {
			return err
		}
		tables, err := GetTables()
		if err != nil {
			return err
		}

		script, err := engine.AuditScript(d, tables)
		if err != nil {
			return err
		}
		log.Printf("Generated %d log tables and %d triggers (%s)\n", len(tables), len(tables)*len(engine.AuditOps), d.Name())
		return writeScript(cmd, script)
	},
}

func init() {
	RootCmd.AddCommand(triggersCmd)
}
