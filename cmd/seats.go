package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rail-sqlgen/internal/engine"
)

var seatsCmd = &cobra.Command{
	Use:   "seats",
	Short: "Generate the bulk INSERT seeding the seat table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := GetDialect()
		if err != nil {
			return err
		}
		plan := GetSeatPlan()

		script, err := engine.SeatScript(d, plan)
		if err != nil {
			return err
		}
		log.Printf("Generated %d seats (%d coaches x %d)\n", plan.Coaches*plan.PerCoach, plan.Coaches, plan.PerCoach)
		return writeScript(cmd, script)
	},
}

func init() {
	RootCmd.AddCommand(seatsCmd)

	defaults := engine.DefaultSeatPlan()
	flags := seatsCmd.Flags()
	flags.Int("coaches", defaults.Coaches, "number of coaches")
	flags.Int("per-coach", defaults.PerCoach, "seats per coach")
	flags.Bool("reset-per-coach", false, "restart the seat type cycle at every coach")

	viper.BindPFlag("seats.coaches", flags.Lookup("coaches"))
	viper.BindPFlag("seats.per_coach", flags.Lookup("per-coach"))
	viper.BindPFlag("seats.reset_per_coach", flags.Lookup("reset-per-coach"))
}
