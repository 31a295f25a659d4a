package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adamchlebek/RL-Dash/internal/aggregator"
	"github.com/adamchlebek/RL-Dash/internal/model"
	"github.com/adamchlebek/RL-Dash/internal/report"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <replay.json>...",
	Short: "Export match summaries to an xlsx workbook",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "summaries.xlsx", "output workbook path")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := cliLogger()
	defer func() { _ = log.Sync() }()

	summaries := make([]model.Summary, 0, len(args))
	for _, path := range args {
		rep, err := openReplay(path, log)
		if err != nil {
			return err
		}
		summaries = append(summaries, aggregator.Build(rep, aggregator.WithLogger(log)))
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := report.WriteWorkbook(f, summaries); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %d match(es) to %s\n", len(summaries), exportOut)
	return nil
}
