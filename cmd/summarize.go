package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adamchlebek/RL-Dash/internal/aggregator"
	"github.com/adamchlebek/RL-Dash/internal/model"
	"github.com/adamchlebek/RL-Dash/internal/replay"
	"github.com/adamchlebek/RL-Dash/internal/report"
)

var (
	summarizeJSON   bool
	summarizeOut    string
	summarizePlayer string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <replay.json>...",
	Short: "Build match summaries from decoded replays",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "print summaries as JSON")
	summarizeCmd.Flags().StringVarP(&summarizeOut, "out", "o", "", "write output to file instead of stdout")
	summarizeCmd.Flags().StringVar(&summarizePlayer, "player", "", "highlight this player in the tables")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	log := cliLogger()
	defer func() { _ = log.Sync() }()

	var w io.Writer = os.Stdout
	if summarizeOut != "" {
		f, err := os.Create(summarizeOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	summaries := make([]model.Summary, 0, len(args))
	for _, path := range args {
		rep, err := openReplay(path, log)
		if err != nil {
			return err
		}
		summaries = append(summaries, aggregator.Build(rep, aggregator.WithLogger(log)))
	}

	if summarizeJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(summaries) == 1 {
			return enc.Encode(summaries[0])
		}
		return enc.Encode(summaries)
	}

	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s ==\n", args[i])
		report.PrintSummary(w, s, summarizePlayer)
	}
	return nil
}

// openReplay decodes the document at path and logs its size.
func openReplay(path string, log *zap.Logger) (*replay.Replay, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat replay: %w", err)
	}
	log.Debug("reading replay",
		zap.String("path", path),
		zap.String("size", humanize.Bytes(uint64(info.Size()))),
	)
	rep, err := replay.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rep, nil
}
