package team

import "fmt"

// Team is a club as published by the bootstrap payload.
type Team struct {
	ID        int
	Code      int
	Name      string
	ShortName string
	Strength  int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ShortName == "" {
		return fmt.Errorf("team short name is required")
	}

	return nil
}

// Index maps team id to team for constant-time lookups.
type Index map[int]Team

func NewIndex(teams []Team) Index {
	out := make(Index, len(teams))
	for _, item := range teams {
		out[item.ID] = item
	}
	return out
}

// ShortName returns the short code for id, or "" when unknown.
func (idx Index) ShortName(id int) string {
	return idx[id].ShortName
}
