package aggregator

import "github.com/adamchlebek/RL-Dash/internal/model"

// AssignMVP flags the highest-scoring player across the whole list, keeping
// the first one on ties. Players outside both teams are eligible.
func AssignMVP(players []ResolvedPlayer) {
	best := -1
	for i, p := range players {
		if best < 0 || p.Score > players[best].Score {
			best = i
		}
	}
	if best >= 0 {
		players[best].Player.Stats.Core.MVP = true
	}
}

// BuildTeam collects the players whose team index matches, in extraction
// order. Team stats stay zero.
func BuildTeam(color string, players []ResolvedPlayer, teamIndex int) model.Team {
	members := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Team == teamIndex {
			members = append(members, p.Player)
		}
	}
	return model.Team{
		Color:   color,
		Name:    color + " team",
		Players: members,
	}
}
