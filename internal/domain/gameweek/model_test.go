package gameweek

import "testing"

func TestCurrentID(t *testing.T) {
	events := []Event{{ID: 1, Finished: true}, {ID: 2, IsCurrent: true}, {ID: 3, IsNext: true}}
	if got := CurrentID(events); got != 2 {
		t.Fatalf("expected current gameweek 2, got %d", got)
	}
	if got := NextID(events); got != 3 {
		t.Fatalf("expected next gameweek 3, got %d", got)
	}
}

func TestCurrentID_DefaultsWhenNoneFlagged(t *testing.T) {
	if got := CurrentID([]Event{{ID: 7}}); got != DefaultCurrent {
		t.Fatalf("expected default %d, got %d", DefaultCurrent, got)
	}
	if got := NextID(nil); got != 0 {
		t.Fatalf("expected 0 when no next event, got %d", got)
	}
}
