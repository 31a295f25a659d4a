package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rldash",
	Short: "Rocket League replay summaries",
	Long:  "Turn decoded Rocket League replays into Ballchasing-style match summaries.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (.env, yaml, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(basicCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(carsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// cliLogger is silent unless --verbose is set.
func cliLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
