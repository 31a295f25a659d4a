package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/adamchlebek/RL-Dash/internal/aggregator"
	"github.com/adamchlebek/RL-Dash/internal/report"
)

var basicJSON bool

var basicCmd = &cobra.Command{
	Use:   "basic <replay.json>",
	Short: "Print the score line and per-player stats of a replay",
	Args:  cobra.ExactArgs(1),
	RunE:  runBasic,
}

func init() {
	basicCmd.Flags().BoolVar(&basicJSON, "json", false, "print as JSON")
}

func runBasic(cmd *cobra.Command, args []string) error {
	log := cliLogger()
	defer func() { _ = log.Sync() }()

	rep, err := openReplay(args[0], log)
	if err != nil {
		return err
	}
	b := aggregator.BuildBasic(rep)
	if basicJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	report.PrintBasic(os.Stdout, b)
	return nil
}
