// Package aggregator turns a decoded replay into the Ballchasing-style match
// summary: header scalars, players, car identities, overtime, teams and MVP.
package aggregator

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adamchlebek/RL-Dash/internal/model"
	"github.com/adamchlebek/RL-Dash/internal/replay"
)

const (
	blueColor   = "blue"
	orangeColor = "orange"
)

type builder struct {
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

// Option customises Build.
type Option func(*builder)

// WithClock overrides the time source used for the created timestamp.
func WithClock(now func() time.Time) Option {
	return func(b *builder) { b.now = now }
}

// WithIDGenerator overrides the summary id generator.
func WithIDGenerator(newID func() string) Option {
	return func(b *builder) { b.newID = newID }
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(b *builder) {
		if log != nil {
			b.log = log
		}
	}
}

// Build assembles the match summary. It never fails: absent or mistyped
// fields become defaults, and a replay without network frames gets unknown
// cars for every player.
func Build(r *replay.Replay, opts ...Option) model.Summary {
	b := builder{now: time.Now, newID: uuid.NewString, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&b)
	}
	if r == nil {
		r = &replay.Replay{}
	}

	props := r.Properties
	index := ResolveCars(r.Frames())
	players := ExtractPlayers(props, index)

	duration := props.Float("TotalSecondsPlayed")
	overtime := IsOvertime(props)
	AssignMVP(players)

	b.log.Debug("replay aggregated",
		zap.Int("frames", len(r.Frames())),
		zap.Int("cars_resolved", len(index)),
		zap.Int("players", len(players)),
		zap.Float64("duration", duration),
		zap.Bool("overtime", overtime),
	)

	get := func(key string) string { return props.String(key, "") }
	matchType := get("MatchType")
	mapName := get("MapName")

	return model.Summary{
		ID:              b.newID(),
		Created:         b.now().UTC().Format(time.RFC3339Nano),
		Status:          model.StatusOK,
		RocketLeagueID:  get("Id"),
		MatchGUID:       get("MatchGuid"),
		Title:           get("ReplayName"),
		MapCode:         mapName,
		MatchType:       matchType,
		TeamSize:        props.Int("TeamSize"),
		PlaylistID:      matchType,
		Duration:        duration,
		Overtime:        overtime,
		OvertimeSeconds: OvertimeSeconds(duration, overtime),
		Date:            get("Date"),
		Blue:            BuildTeam(blueColor, players, model.TeamBlue),
		Orange:          BuildTeam(orangeColor, players, model.TeamOrange),
		PlaylistName:    matchType,
		MapName:         mapName,
		Score: model.BasicScore{
			Team0: props.Int("Team0Score"),
			Team1: props.Int("Team1Score"),
		},
	}
}
