package model

import "math"

// Team index values used by the replay header.
const (
	TeamBlue   = 0
	TeamOrange = 1
)

// StatusOK is the only status a generated summary carries.
const StatusOK = "ok"

// ---- Ballchasing-style summary ----

type PlayerID struct {
	Platform string `json:"platform"`
	ID       string `json:"id"`
}

type CoreStats struct {
	Shots              int  `json:"shots"`
	Goals              int  `json:"goals"`
	Saves              int  `json:"saves"`
	Assists            int  `json:"assists"`
	Score              int  `json:"score"`
	MVP                bool `json:"mvp"`
	ShootingPercentage int  `json:"shooting_percentage"`
}

// BoostStats is a placeholder; boost usage is not derived.
type BoostStats struct {
	BPM int `json:"bpm"`
}

// DemoStats is a placeholder; demolitions are not derived.
type DemoStats struct {
	Inflicted int `json:"inflicted"`
	Taken     int `json:"taken"`
}

type PlayerStats struct {
	Core  CoreStats  `json:"core"`
	Boost BoostStats `json:"boost"`
	Demo  DemoStats  `json:"demo"`
}

type Player struct {
	Name    string      `json:"name"`
	ID      PlayerID    `json:"id"`
	CarID   uint32      `json:"car_id"`
	CarName string      `json:"car_name"`
	Stats   PlayerStats `json:"stats"`
}

// TeamStats is always zero: member stats are not rolled up per team.
type TeamStats struct {
	Core CoreStats `json:"core"`
	Demo DemoStats `json:"demo"`
}

type Team struct {
	Color   string    `json:"color"`
	Name    string    `json:"name"`
	Players []Player  `json:"players"`
	Stats   TeamStats `json:"stats"`
}

// Summary is the top-level match summary.
type Summary struct {
	ID              string  `json:"id"`
	Created         string  `json:"created"`
	Status          string  `json:"status"`
	RocketLeagueID  string  `json:"rocket_league_id"`
	MatchGUID       string  `json:"match_guid"`
	Title           string  `json:"title"`
	MapCode         string  `json:"map_code"`
	MatchType       string  `json:"match_type"`
	TeamSize        int     `json:"team_size"`
	PlaylistID      string  `json:"playlist_id"`
	Duration        float64 `json:"duration"`
	Overtime        bool    `json:"overtime"`
	OvertimeSeconds int     `json:"overtime_seconds"`
	Date            string  `json:"date"`
	Blue            Team    `json:"blue"`
	Orange          Team    `json:"orange"`
	PlaylistName    string  `json:"playlist_name"`
	MapName         string  `json:"map_name"`

	// Score is the header scoreline. It is not part of the JSON payload;
	// rosters can omit players, so it is not derived from them.
	Score BasicScore `json:"-"`
}

// MVP returns the flagged player, if any, looking at both teams.
func (s *Summary) MVP() (Player, bool) {
	for _, t := range []Team{s.Blue, s.Orange} {
		for _, p := range t.Players {
			if p.Stats.Core.MVP {
				return p, true
			}
		}
	}
	return Player{}, false
}

// ShootingPercentage is goals/shots*100 rounded half-up, 0 without shots.
func ShootingPercentage(goals, shots int) int {
	if shots <= 0 {
		return 0
	}
	return int(math.Round(float64(goals) / float64(shots) * 100))
}

// ---- Compact summary ----

type BasicScore struct {
	Team0 int `json:"team0"`
	Team1 int `json:"team1"`
}

type BasicPlayer struct {
	Name    string `json:"name"`
	Goals   int    `json:"goals"`
	Assists int    `json:"assists"`
	Saves   int    `json:"saves"`
	Shots   int    `json:"shots"`
	Score   int    `json:"score"`
	Team    int    `json:"team"`
}

// BasicSummary is the header-only view: no identities, cars or MVP.
type BasicSummary struct {
	MatchType string        `json:"match_type"`
	Score     BasicScore    `json:"score"`
	Players   []BasicPlayer `json:"players"`
}
