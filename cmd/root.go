package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "rail-sqlgen",
	Short: "Generate audit triggers and seed data SQL for the railway booking schema",
	Long: `
rail-sqlgen writes SQL scripts to stdout (or --output):

  triggers  audit log tables with INSERT/UPDATE/DELETE triggers
  seats     bulk INSERT seeding the seat table
  fill      deterministic fake rows for catalog tables
  tables    the table catalog in dependency order
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./rail-sqlgen.yaml)")
	flags.String("dialect", "mysql", "SQL dialect: mysql, postgres or sqlite")
	flags.StringP("output", "o", "", "write SQL to this file instead of stdout")
	flags.String("catalog", "", "YAML table catalog (default is the built-in railway catalog)")

	// Bind flags to viper (Flag > Env > Config > Default)
	viper.BindPFlag("dialect", flags.Lookup("dialect"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("catalog", flags.Lookup("catalog"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("rail-sqlgen")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RAILSQL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// stdout carries the SQL, so config notices go to the log (stderr).
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Printf("Warning: failed to read config %s: %v\n", cfgFile, err)
	}
}
