package aggregator

import (
	"strconv"

	"github.com/adamchlebek/RL-Dash/internal/model"
	"github.com/adamchlebek/RL-Dash/internal/replay"
)

const (
	// TeamUnassigned marks a record without a usable "Team" field.
	TeamUnassigned = -1

	unknownName     = "Unknown"
	unknownIdentity = "unknown"
)

var platformNames = map[string]string{
	"OnlinePlatform_Steam":  "steam",
	"OnlinePlatform_Epic":   "epic",
	"OnlinePlatform_PS4":    "ps4",
	"OnlinePlatform_PS5":    "ps5",
	"OnlinePlatform_Xbox":   "xbox",
	"OnlinePlatform_Switch": "switch",
}

// ResolvedPlayer is an extracted player plus the raw values grouping and MVP
// selection need.
type ResolvedPlayer struct {
	Score  int
	Team   int
	Player model.Player
}

// ExtractPlayers extracts every record of the "PlayerStats" array, in order.
func ExtractPlayers(props replay.Properties, index CarIndex) []ResolvedPlayer {
	records := props.Array("PlayerStats")
	players := make([]ResolvedPlayer, 0, len(records))
	for _, rec := range records {
		players = append(players, ExtractPlayer(rec, index))
	}
	return players
}

// ExtractPlayer turns one raw player record into a typed player. Missing or
// mistyped fields fall back to their defaults.
func ExtractPlayer(rec replay.Properties, index CarIndex) ResolvedPlayer {
	team := TeamUnassigned
	if v, ok := rec.Find("Team"); ok {
		if i, ok := v.AsInt(); ok {
			team = int(i)
		}
	}

	name := rec.String("Name", unknownName)
	score := rec.Int("Score")
	goals := rec.Int("Goals")
	shots := rec.Int("Shots")
	car := index.Lookup(name)

	return ResolvedPlayer{
		Score: score,
		Team:  team,
		Player: model.Player{
			Name:    name,
			ID:      playerIdentity(rec),
			CarID:   car.ID,
			CarName: car.Name,
			Stats: model.PlayerStats{
				Core: model.CoreStats{
					Shots:              shots,
					Goals:              goals,
					Saves:              rec.Int("Saves"),
					Assists:            rec.Int("Assists"),
					Score:              score,
					ShootingPercentage: model.ShootingPercentage(goals, shots),
				},
			},
		},
	}
}

// playerIdentity decodes the nested "PlayerID" struct.
func playerIdentity(rec replay.Properties) model.PlayerID {
	id, ok := rec.Struct("PlayerID")
	if !ok {
		return model.PlayerID{Platform: unknownIdentity, ID: unknownIdentity}
	}

	uid := unknownIdentity
	if v, ok := id.Fields.Find("Uid"); ok {
		if q, ok := v.AsQWord(); ok {
			uid = strconv.FormatUint(q, 10)
		}
	}

	platform := unknownIdentity
	if v, ok := id.Fields.Find("Platform"); ok {
		if b, ok := v.AsByte(); ok && b.HasValue {
			platform = platformLabel(b.Value)
		}
	}
	return model.PlayerID{Platform: platform, ID: uid}
}

// platformLabel maps known platform enum labels; others pass through as-is.
func platformLabel(raw string) string {
	if p, ok := platformNames[raw]; ok {
		return p
	}
	return raw
}
