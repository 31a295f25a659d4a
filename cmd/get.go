package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <replay.json> <path>",
	Short: "Print a single replay value by dotted path",
	Long: `Print a single replay value. Supported paths:
  properties.<Key>        a header property, e.g. properties.MapName
  header.version          major.minor version
  header.length           header size in bytes
  header.crc              header CRC
  network_frames.count    number of network frames`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	log := cliLogger()
	defer func() { _ = log.Sync() }()

	rep, err := openReplay(args[0], log)
	if err != nil {
		return err
	}
	value, ok := rep.Lookup(args[1])
	if !ok {
		return fmt.Errorf("no value at %q", args[1])
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}
