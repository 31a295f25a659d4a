package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/adamchlebek/RL-Dash/internal/cars"
	"github.com/adamchlebek/RL-Dash/internal/report"
)

var carsJSON bool

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "List known car body ids",
	Args:  cobra.NoArgs,
	RunE:  runCars,
}

func init() {
	carsCmd.Flags().BoolVar(&carsJSON, "json", false, "print as JSON")
}

func runCars(cmd *cobra.Command, args []string) error {
	list := cars.All()
	if carsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	report.PrintCarTable(os.Stdout, list)
	return nil
}
