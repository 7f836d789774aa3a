package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rail-sqlgen/internal/dialect"
	"rail-sqlgen/internal/engine"
	"rail-sqlgen/internal/schema"
)

func init() {
	seats := engine.DefaultSeatPlan()
	viper.SetDefault("dialect", "mysql")
	viper.SetDefault("seats.table", seats.Table)
	viper.SetDefault("seats.coaches", seats.Coaches)
	viper.SetDefault("seats.per_coach", seats.PerCoach)
	viper.SetDefault("seats.types", seats.Types)
	viper.SetDefault("seats.category", seats.Category)
	viper.SetDefault("seats.reset_per_coach", seats.ResetPerCoach)
	viper.SetDefault("fill.count", 10)
	viper.SetDefault("fill.seed", 1)
}

// GetDialect returns the configured SQL dialect.
func GetDialect() (dialect.Dialect, error) {
	return dialect.GetDialect(viper.GetString("dialect"))
}

// GetTables returns the configured catalog, or the built-in railway catalog.
func GetTables() ([]*schema.Table, error) {
	defs := schema.RailwayCatalog()
	if path := viper.GetString("catalog"); path != "" {
		loaded, err := schema.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		defs = loaded
	}
	tables, err := schema.Build(defs)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return tables, nil
}

// GetSeatPlan reads the seats.* keys. Keys are read one by one so that a
// partial seats section in the config file keeps the remaining defaults.
func GetSeatPlan() engine.SeatPlan {
	return engine.SeatPlan{
		Table:         viper.GetString("seats.table"),
		Coaches:       viper.GetInt("seats.coaches"),
		PerCoach:      viper.GetInt("seats.per_coach"),
		Types:         GetList("seats.types"),
		Category:      viper.GetString("seats.category"),
		ResetPerCoach: viper.GetBool("seats.reset_per_coach"),
	}
}

// GetList reads a list key. Values from the environment arrive as one string,
// so every element is split on commas like the --tables flag.
func GetList(key string) []string {
	var out []string
	for _, v := range viper.GetStringSlice(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// writeScript writes the script to --output, or to the command's stdout.
func writeScript(cmd *cobra.Command, script string) error {
	path := viper.GetString("output")
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), script)
		return err
	}
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
