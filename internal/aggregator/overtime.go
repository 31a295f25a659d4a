package aggregator

import (
	"math"

	"github.com/adamchlebek/RL-Dash/internal/replay"
)

const (
	// regulationSeconds is the length of regulation play.
	regulationSeconds = 300.0
	// overtimeThreshold leaves room for the end-of-match buffer.
	overtimeThreshold = 303.0
)

// IsOvertime reports whether the match went to sudden-death overtime: the
// clock ran past regulation plus buffer and the final margin is one goal.
func IsOvertime(props replay.Properties) bool {
	duration := props.Float("TotalSecondsPlayed")
	diff := props.Int("Team0Score") - props.Int("Team1Score")
	if diff < 0 {
		diff = -diff
	}
	return duration > overtimeThreshold && diff == 1
}

// OvertimeSeconds returns the rounded time played past regulation, or 0.
func OvertimeSeconds(duration float64, overtime bool) int {
	if !overtime || duration <= regulationSeconds {
		return 0
	}
	return int(math.Round(duration - regulationSeconds))
}
