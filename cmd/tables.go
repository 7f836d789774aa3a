package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rail-sqlgen/internal/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List catalog tables in dependency order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := GetTables()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, t := range schema.SortTablesByFKCount(tables) {
			key := "-"
			if k := t.KeyColumn(); k != nil {
				key = k.Name
			}
			fmt.Fprintf(out, "[%02d] %s (columns: %d, key: %s, dependencies: %v)\n",
				i+1, t.Name, len(t.Columns), key, t.Dependencies)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}
