// Package main is the entry point for the rldash CLI, which turns decoded
// Rocket League replays into match summaries and serves them over HTTP.
package main

import "github.com/adamchlebek/RL-Dash/cmd"

func main() {
	cmd.Execute()
}
