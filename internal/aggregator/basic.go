package aggregator

import (
	"github.com/adamchlebek/RL-Dash/internal/model"
	"github.com/adamchlebek/RL-Dash/internal/replay"
)

// BuildBasic returns the compact header-only summary. Unlike ExtractPlayer,
// a record without a team counts as team 0 here.
func BuildBasic(r *replay.Replay) model.BasicSummary {
	if r == nil {
		r = &replay.Replay{}
	}
	props := r.Properties

	records := props.Array("PlayerStats")
	players := make([]model.BasicPlayer, 0, len(records))
	for _, rec := range records {
		players = append(players, model.BasicPlayer{
			Name:    rec.String("Name", unknownName),
			Goals:   rec.Int("Goals"),
			Assists: rec.Int("Assists"),
			Saves:   rec.Int("Saves"),
			Shots:   rec.Int("Shots"),
			Score:   rec.Int("Score"),
			Team:    rec.Int("Team"),
		})
	}

	return model.BasicSummary{
		MatchType: props.String("MatchType", unknownName),
		Score: model.BasicScore{
			Team0: props.Int("Team0Score"),
			Team1: props.Int("Team1Score"),
		},
		Players: players,
	}
}
