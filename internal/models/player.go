package models

import (
	"fmt"
	"strings"
)

const (
	playerRefPrefix = "player:"
	customRefPrefix = "custom:"
)

// PlayerRef identifies a player for one game. Regular players have a platform-wide
// profile; custom players exist only inside their team and are tagged with Custom.
type PlayerRef struct {
	ID     string `json:"id"`
	Custom bool   `json:"custom,omitempty"`
}

// String returns the tagged form of the reference, e.g. "player:42" or "custom:7"
func (r PlayerRef) String() string {
	if r.Custom {
		return customRefPrefix + r.ID
	}
	return playerRefPrefix + r.ID
}

// IsZero returns true for an empty reference
func (r PlayerRef) IsZero() bool {
	return r.ID == ""
}

// ParsePlayerRef parses the tagged form produced by PlayerRef.String
func ParsePlayerRef(s string) (PlayerRef, error) {
	switch {
	case strings.HasPrefix(s, customRefPrefix) && len(s) > len(customRefPrefix):
		return PlayerRef{ID: strings.TrimPrefix(s, customRefPrefix), Custom: true}, nil
	case strings.HasPrefix(s, playerRefPrefix) && len(s) > len(playerRefPrefix):
		return PlayerRef{ID: strings.TrimPrefix(s, playerRefPrefix)}, nil
	default:
		return PlayerRef{}, fmt.Errorf("invalid player reference %q", s)
	}
}

// Player represents a player eligible to play for a team
type Player struct {
	// ID is the unique identifier of the player (or of the custom player record)
	ID string `json:"id"`

	// TeamID is the team the player is rostered on
	TeamID string `json:"team_id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// JerseyNumber is the number printed on the player's jersey
	JerseyNumber string `json:"jersey_number,omitempty"`

	// Custom marks a team-scoped player with no platform-wide profile
	Custom bool `json:"custom,omitempty"`
}

// Ref returns the game reference for the player
func (p Player) Ref() PlayerRef {
	return PlayerRef{ID: p.ID, Custom: p.Custom}
}

// RosterState is the on-court/bench partition of one team's eligible players
type RosterState struct {
	// TeamID is the team this roster belongs to
	TeamID string `json:"team_id"`

	// OnCourt holds the five players currently playing
	OnCourt []PlayerRef `json:"on_court"`

	// Bench holds every other eligible player
	Bench []PlayerRef `json:"bench"`
}
