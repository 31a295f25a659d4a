package aggregator

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/adamchlebek/RL-Dash/internal/replay"
)

var fixedTime = time.Date(2025, 3, 1, 20, 30, 0, 0, time.UTC)

func fixedOpts(id string) []Option {
	return []Option{
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return id }),
	}
}

func sampleReplay() *replay.Replay {
	return &replay.Replay{
		Properties: headerProps(310.0, 2, 1,
			playerRecord("Ana", 0, 500, 2, 4),
			playerRecord("Bo", 1, 320, 1, 3),
			playerRecord("Cy", 0, 610, 0, 1),
			playerRecord("Di", 1, 150, 0, 0),
		),
		NetworkFrames: &replay.NetworkFrames{Frames: []replay.Frame{
			loadoutFrame(7, 23, "Ana"),
			loadoutFrame(9, 403, "Bo"),
		}},
	}
}

func TestBuild_Header(t *testing.T) {
	s := Build(sampleReplay(), fixedOpts("id-1")...)

	if s.ID != "id-1" || s.Created != "2025-03-01T20:30:00Z" || s.Status != "ok" {
		t.Errorf("stamp mismatch: %q %q %q", s.ID, s.Created, s.Status)
	}
	if s.RocketLeagueID != "7A1B" || s.MatchGUID != "GUID-1" || s.Title != "scrim #4" {
		t.Errorf("ids mismatch: %+v", s)
	}
	if s.MapCode != "Stadium_P" || s.MapName != "Stadium_P" {
		t.Errorf("map mismatch: %q %q", s.MapCode, s.MapName)
	}
	if s.MatchType != "Online" || s.PlaylistID != "Online" || s.PlaylistName != "Online" {
		t.Errorf("playlist mismatch: %q %q %q", s.MatchType, s.PlaylistID, s.PlaylistName)
	}
	if s.TeamSize != 2 || s.Duration != 310.0 || s.Date != "2025-03-01 20-11-09" {
		t.Errorf("scalars mismatch: size=%d duration=%f date=%q", s.TeamSize, s.Duration, s.Date)
	}
	if !s.Overtime || s.OvertimeSeconds != 10 {
		t.Errorf("overtime: want true/10, got %v/%d", s.Overtime, s.OvertimeSeconds)
	}
	if s.Score.Team0 != 2 || s.Score.Team1 != 1 {
		t.Errorf("score: want 2-1, got %+v", s.Score)
	}
}

func TestBuild_TeamsAndMVP(t *testing.T) {
	s := Build(sampleReplay(), fixedOpts("id-1")...)

	if s.Blue.Color != "blue" || s.Orange.Color != "orange" {
		t.Errorf("colors: %q %q", s.Blue.Color, s.Orange.Color)
	}
	if len(s.Blue.Players) != 2 || len(s.Orange.Players) != 2 {
		t.Fatalf("roster sizes: blue=%d orange=%d", len(s.Blue.Players), len(s.Orange.Players))
	}
	mvp, ok := s.MVP()
	if !ok || mvp.Name != "Cy" {
		t.Errorf("expected Cy as MVP, got %q (ok=%v)", mvp.Name, ok)
	}
	ana := s.Blue.Players[0]
	if ana.CarID != 23 || ana.CarName != "Octane" || ana.Stats.Core.ShootingPercentage != 50 {
		t.Errorf("Ana mismatch: %+v", ana)
	}
	bo := s.Orange.Players[0]
	if bo.CarID != 403 || bo.CarName != "Dominus" {
		t.Errorf("Bo car mismatch: %d %s", bo.CarID, bo.CarName)
	}
	cy := s.Blue.Players[1]
	if cy.CarID != 0 || cy.CarName != "Unknown" {
		t.Errorf("Cy has no loadout and should be unknown: %d %s", cy.CarID, cy.CarName)
	}
}

// TestBuild_NoFrames: without a network stream every car is unknown.
func TestBuild_NoFrames(t *testing.T) {
	r := sampleReplay()
	r.NetworkFrames = nil
	s := Build(r, fixedOpts("id-1")...)
	for _, p := range append(s.Blue.Players, s.Orange.Players...) {
		if p.CarID != 0 || p.CarName != "Unknown" {
			t.Errorf("%s: want (0, Unknown), got (%d, %s)", p.Name, p.CarID, p.CarName)
		}
	}
}

// TestBuild_MissingPlayerStats: empty rosters and no MVP anywhere.
func TestBuild_MissingPlayerStats(t *testing.T) {
	s := Build(&replay.Replay{Properties: headerProps(290, 1, 0)}, fixedOpts("id-1")...)
	if len(s.Blue.Players) != 0 || len(s.Orange.Players) != 0 {
		t.Errorf("expected empty rosters, got %d/%d", len(s.Blue.Players), len(s.Orange.Players))
	}
	if _, ok := s.MVP(); ok {
		t.Error("expected no MVP")
	}
	out, err := json.Marshal(s.Blue)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"players":[]`; !strings.Contains(string(out), want) {
		t.Errorf("expected %s in %s", want, out)
	}
}

// TestBuild_EmptyReplay: the builder is total, even for nil input.
func TestBuild_EmptyReplay(t *testing.T) {
	for _, r := range []*replay.Replay{nil, {}} {
		s := Build(r, fixedOpts("x")...)
		if s.Status != "ok" || s.Title != "" || s.Duration != 0 || s.Overtime || s.TeamSize != 0 {
			t.Errorf("unexpected summary for empty replay: %+v", s)
		}
	}
}

// TestBuild_Idempotent: two runs differ only by id and created.
func TestBuild_Idempotent(t *testing.T) {
	r := sampleReplay()
	first := Build(r)
	second := Build(r)

	if first.ID == second.ID {
		t.Error("expected distinct generated ids")
	}
	first.ID, first.Created = "", ""
	second.ID, second.Created = "", ""
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries differ:\n%+v\n%+v", first, second)
	}
}

func TestBuild_JSONFields(t *testing.T) {
	out, err := json.Marshal(Build(sampleReplay(), fixedOpts("id-1")...))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(out, &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"id", "created", "status", "rocket_league_id", "match_guid", "title", "map_code",
		"match_type", "team_size", "playlist_id", "duration", "overtime", "overtime_seconds",
		"date", "blue", "orange", "playlist_name", "map_name",
	} {
		if _, ok := top[key]; !ok {
			t.Errorf("missing top-level field %q", key)
		}
	}
	if len(top) != 18 {
		t.Errorf("expected 18 top-level fields, got %d", len(top))
	}

	var blue struct {
		Players []map[string]json.RawMessage `json:"players"`
	}
	if err := json.Unmarshal(top["blue"], &blue); err != nil {
		t.Fatalf("unmarshal blue: %v", err)
	}
	for _, key := range []string{"name", "id", "car_id", "car_name", "stats"} {
		if _, ok := blue.Players[0][key]; !ok {
			t.Errorf("missing player field %q", key)
		}
	}
}

// TestBuild_PlainDocument: a document without variant tags still yields the
// header scalars, players and identities.
func TestBuild_PlainDocument(t *testing.T) {
	doc := `{"properties": {
	  "TeamSize": 1, "Team0Score": 2, "Team1Score": 1, "TotalSecondsPlayed": 310.0,
	  "PlayerStats": [
	    {"Name": "Ana", "Team": 0, "Score": 500, "Goals": 2, "Shots": 4,
	     "PlayerID": {"name": "UniqueNetId", "fields": {
	       "Uid": "76561198000000001",
	       "Platform": {"kind": "OnlinePlatform", "value": "OnlinePlatform_Steam"}}}},
	    {"Name": "Bo", "Team": 1, "Score": 320, "Goals": 1, "Shots": 1}
	  ]}}`
	r, err := replay.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	s := Build(r, fixedOpts("id-plain")...)

	if s.TeamSize != 1 || s.Duration != 310.0 || !s.Overtime || s.OvertimeSeconds != 10 {
		t.Errorf("header mismatch: size=%d duration=%f overtime=%v/%d",
			s.TeamSize, s.Duration, s.Overtime, s.OvertimeSeconds)
	}
	if len(s.Blue.Players) != 1 || len(s.Orange.Players) != 1 {
		t.Fatalf("rosters: want 1/1, got %d/%d", len(s.Blue.Players), len(s.Orange.Players))
	}
	ana := s.Blue.Players[0]
	if ana.Name != "Ana" || ana.ID.Platform != "steam" || ana.ID.ID != "76561198000000001" {
		t.Errorf("Ana identity mismatch: %+v", ana.ID)
	}
	if !ana.Stats.Core.MVP || ana.Stats.Core.ShootingPercentage != 50 {
		t.Errorf("Ana stats mismatch: %+v", ana.Stats.Core)
	}
	if bo := s.Orange.Players[0]; bo.Name != "Bo" || bo.ID.Platform != "unknown" {
		t.Errorf("Bo mismatch: %+v", bo)
	}
}
