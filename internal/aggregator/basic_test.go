package aggregator

import (
	"testing"

	"github.com/adamchlebek/RL-Dash/internal/replay"
)

func TestBuildBasic(t *testing.T) {
	noTeam := replay.Properties{replay.Prop("Name", replay.Str("Coach")), replay.Prop("Score", replay.Int(5))}
	r := &replay.Replay{Properties: headerProps(300, 3, 1,
		playerRecord("Ana", 1, 500, 2, 4),
		noTeam,
	)}

	b := BuildBasic(r)
	if b.MatchType != "Online" || b.Score.Team0 != 3 || b.Score.Team1 != 1 {
		t.Errorf("header mismatch: %+v", b)
	}
	if len(b.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(b.Players))
	}
	if p := b.Players[0]; p.Name != "Ana" || p.Team != 1 || p.Goals != 2 || p.Shots != 4 || p.Score != 500 {
		t.Errorf("Ana mismatch: %+v", p)
	}
	if p := b.Players[1]; p.Team != 0 {
		t.Errorf("record without team should count as team 0, got %d", p.Team)
	}
}

func TestBuildBasic_Empty(t *testing.T) {
	b := BuildBasic(nil)
	if b.MatchType != "Unknown" || len(b.Players) != 0 {
		t.Errorf("unexpected basic summary: %+v", b)
	}
}
