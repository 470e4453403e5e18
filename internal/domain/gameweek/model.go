package gameweek

import (
	"fmt"
	"time"
)

// DefaultCurrent is used when no event is flagged as current.
const DefaultCurrent = 1

// Event is one scheduling round of the season.
type Event struct {
	ID         int
	Name       string
	DeadlineAt time.Time
	IsCurrent  bool
	IsNext     bool
	Finished   bool
}

func (e Event) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("event id must be greater than zero")
	}
	return nil
}

// CurrentID returns the id of the event flagged current, or DefaultCurrent.
func CurrentID(events []Event) int {
	for _, item := range events {
		if item.IsCurrent {
			return item.ID
		}
	}
	return DefaultCurrent
}

// NextID returns the id of the event flagged next, or 0 when none is.
func NextID(events []Event) int {
	for _, item := range events {
		if item.IsNext {
			return item.ID
		}
	}
	return 0
}
