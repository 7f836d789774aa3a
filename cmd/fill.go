package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rail-sqlgen/internal/engine"
	"rail-sqlgen/internal/schema"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Generate deterministic fake rows for catalog tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := GetDialect()
		if err != nil {
			return err
		}
		allTables, err := GetTables()
		if err != nil {
			return err
		}

		// Filter tables strategy: --tables flag or fill.tables config, else all.
		targetTableNames := GetList("fill.tables")
		targetTables := schema.Select(allTables, targetTableNames)
		if len(targetTables) == 0 {
			return fmt.Errorf("no matching tables found for inputs: %v", targetTableNames)
		}

		targetCount := viper.GetInt("fill.count")
		seed := viper.GetInt64("fill.seed")
		log.Printf("Generating %d rows per table for %d tables (dialect: %s, seed: %d)\n",
			targetCount, len(targetTables), d.Name(), seed)
		start := time.Now()

		opts := engine.FillOptions{
			Count: targetCount,
			Clean: viper.GetBool("fill.clean"),
		}

		// Progress bar on stderr so stdout stays valid SQL.
		var progress *uiprogress.Progress
		if viper.GetBool("fill.progress") {
			progress = uiprogress.New()
			progress.SetOut(os.Stderr)
			bar := progress.AddBar(targetCount * len(targetTables)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Generating: "
			})
			opts.OnProgress = func() { bar.Incr() }
			progress.Start()
		}

		script, results, err := engine.Fill(d, engine.NewGenerator(seed), targetTables, opts)

		if progress != nil {
			progress.Stop()
		}
		if err != nil {
			return err
		}

		if err := writeScript(cmd, script); err != nil {
			return err
		}
		printSummary(results, time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fillCmd)

	flags := fillCmd.Flags()
	flags.Int("count", 10, "rows per table")
	flags.Int64("seed", 1, "faker seed (0 picks a random seed)")
	flags.StringSlice("tables", nil, "comma separated list of tables (default all)")
	flags.Bool("clean", false, "truncate the tables before inserting")
	flags.Bool("progress", false, "show a progress bar on stderr")

	viper.BindPFlag("fill.count", flags.Lookup("count"))
	viper.BindPFlag("fill.seed", flags.Lookup("seed"))
	viper.BindPFlag("fill.tables", flags.Lookup("tables"))
	viper.BindPFlag("fill.clean", flags.Lookup("clean"))
	viper.BindPFlag("fill.progress", flags.Lookup("progress"))
}

// printSummary reports per-table results in generation order on stderr.
func printSummary(results []schema.PumpResult, elapsed time.Duration) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr, "\nSummary Report (Dependency Order):")
	total := 0
	for i, r := range results {
		line := fmt.Sprintf("[%02d/%02d] %-20s : %d rows (Target: %d) - %s",
			i+1, len(results), r.TableName, r.Actual, r.Target, r.Status)
		if r.Status == "OK" {
			ok.Fprintln(os.Stderr, "[✓] "+line)
		} else {
			warn.Fprintln(os.Stderr, "[!] "+line)
		}
		if r.ErrorMsg != "" {
			fmt.Fprintf(os.Stderr, "    └ %s\n", r.ErrorMsg)
		}
		total += r.Actual
	}
	fmt.Fprintf(os.Stderr, "Total: %d rows in %s\n", total, elapsed.Round(time.Millisecond))
}
