package aggregator

import (
	"github.com/adamchlebek/RL-Dash/internal/replay"
)

// playerRecord builds a raw "PlayerStats" element.
func playerRecord(name string, team, score, goals, shots int32) replay.Properties {
	return replay.Properties{
		replay.Prop("Name", replay.Str(name)),
		replay.Prop("Team", replay.Int(team)),
		replay.Prop("Score", replay.Int(score)),
		replay.Prop("Goals", replay.Int(goals)),
		replay.Prop("Shots", replay.Int(shots)),
	}
}

// headerProps builds a minimal header with the given duration and score line.
func headerProps(duration float64, team0, team1 int32, players ...replay.Properties) replay.Properties {
	props := replay.Properties{
		replay.Prop("TeamSize", replay.Int(2)),
		replay.Prop("Team0Score", replay.Int(team0)),
		replay.Prop("Team1Score", replay.Int(team1)),
		replay.Prop("TotalSecondsPlayed", replay.Float(duration)),
		replay.Prop("MatchType", replay.Name("Online")),
		replay.Prop("MapName", replay.Name("Stadium_P")),
		replay.Prop("ReplayName", replay.Str("scrim #4")),
		replay.Prop("Id", replay.Str("7A1B")),
		replay.Prop("MatchGuid", replay.Str("GUID-1")),
		replay.Prop("Date", replay.Str("2025-03-01 20-11-09")),
	}
	if len(players) > 0 {
		props = append(props, replay.Prop("PlayerStats", replay.Array(players...)))
	}
	return props
}

// loadoutFrame builds a frame where actorID carries a blue-side body and a
// player-name string update.
func loadoutFrame(actorID int32, body uint32, name string) replay.Frame {
	return replay.Frame{UpdatedActors: []replay.UpdatedActor{
		{ActorID: actorID, Attribute: replay.Attribute{
			Kind:        replay.AttrTeamLoadout,
			Variant:     "TeamLoadout",
			TeamLoadout: replay.TeamLoadout{Blue: replay.Loadout{Body: body}, Orange: replay.Loadout{Body: 403}},
		}},
		{ActorID: actorID, Attribute: replay.Attribute{Kind: replay.AttrString, Variant: "String", String: name}},
	}}
}
