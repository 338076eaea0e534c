// Package save implements JSON serialization and restoration of an
// in-progress journey. Only mutable state is captured: the world graph
// itself is fixed and rebuilt by the engine, so a save carries the
// player, the journey ledger, active weather, and the per-location
// state that play can change (items taken, places visited).
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/borderline/config"
	"github.com/nathoo/borderline/engine/character"
	"github.com/nathoo/borderline/engine/session"
	"github.com/nathoo/borderline/types"
)

// LocationState captures the mutable parts of one location.
type LocationState struct {
	Items   []string `json:"items"`
	Visited bool     `json:"visited"`
}

// Data is the JSON-serializable save format.
type Data struct {
	Version   string                   `json:"version"`
	Turn      int                      `json:"turn"`
	Player    *character.Character     `json:"player"`
	Stats     session.JourneyStats     `json:"stats"`
	Weather   *types.Weather           `json:"weather,omitempty"`
	Locations map[string]LocationState `json:"locations"`
}

// Snapshot serializes the session's mutable state to JSON bytes.
func Snapshot(s *session.Context) ([]byte, error) {
	data := Data{
		Version:   config.Version,
		Turn:      s.Turn,
		Player:    s.Player,
		Stats:     s.Stats,
		Weather:   s.Weather,
		Locations: map[string]LocationState{},
	}
	for id, l := range s.World.Locations {
		data.Locations[id] = LocationState{
			Items:   append([]string{}, l.Items...),
			Visited: l.Visited,
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into save data.
func Load(data []byte) (*Data, error) {
	var sd Data
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Player == nil {
		return nil, fmt.Errorf("save has no player record")
	}
	// Ensure maps are never nil after load.
	if sd.Player.Flags == nil {
		sd.Player.Flags = map[string]bool{}
	}
	if sd.Locations == nil {
		sd.Locations = map[string]LocationState{}
	}
	return &sd, nil
}

// Restore applies loaded save data onto a live session. The player keeps
// its identity (world locations hold it by pointer); its fields are
// overwritten and it is moved to the saved location.
func Restore(s *session.Context, sd *Data) error {
	dest := s.World.Get(sd.Player.Location)
	if dest == nil {
		return fmt.Errorf("save references unknown location %q", sd.Player.Location)
	}

	if cur := s.Location(); cur != nil {
		cur.RemoveCharacter(s.Player)
	}
	*s.Player = *sd.Player
	dest.AddCharacter(s.Player)

	s.Turn = sd.Turn
	s.Stats = sd.Stats
	s.Weather = sd.Weather

	for id, ls := range sd.Locations {
		if l := s.World.Get(id); l != nil {
			l.Items = append([]string{}, ls.Items...)
			l.Visited = ls.Visited
		}
	}

	// Re-derive the time of day for the restored turn.
	t := s.TimeOfDay()
	for _, l := range s.World.Locations {
		l.SetTimeOfDay(t)
	}
	return nil
}
