package aggregator

import (
	"github.com/adamchlebek/RL-Dash/internal/cars"
	"github.com/adamchlebek/RL-Dash/internal/replay"
)

// UnknownCar is the car name used when a body id or player is not resolved.
const UnknownCar = "Unknown"

// CarIdentity is the body a player drove.
type CarIdentity struct {
	ID   uint32
	Name string
}

// CarIndex maps player display name to car.
type CarIndex map[string]CarIdentity

// Lookup returns the car for name, or (0, "Unknown").
func (c CarIndex) Lookup(name string) CarIdentity {
	if car, ok := c[name]; ok {
		return car
	}
	return CarIdentity{Name: UnknownCar}
}

// ResolveCars joins team loadout updates with the player name replicated on
// the same actor within the same frame. The blue loadout body is used for
// every player. Later frames overwrite earlier ones for the same name.
func ResolveCars(frames []replay.Frame) CarIndex {
	index := make(CarIndex)
	for _, frame := range frames {
		for _, upd := range frame.UpdatedActors {
			if upd.Attribute.Kind != replay.AttrTeamLoadout {
				continue
			}
			name, ok := actorName(frame.UpdatedActors, upd.ActorID)
			if !ok {
				continue
			}
			body := upd.Attribute.TeamLoadout.Blue.Body
			carName, ok := cars.Name(body)
			if !ok {
				carName = UnknownCar
			}
			index[name] = CarIdentity{ID: body, Name: carName}
		}
	}
	return index
}

// actorName returns the first plain-string update on actorID in the frame.
func actorName(updates []replay.UpdatedActor, actorID int32) (string, bool) {
	for _, u := range updates {
		if u.ActorID == actorID && u.Attribute.Kind == replay.AttrString {
			return u.Attribute.String, true
		}
	}
	return "", false
}
