package usecase

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
)

// UpdateLivePlayerStats merges each update's fields into that player's live
// entry: new fields overwrite, omitted fields keep their previous value.
// Entries are compared by value after the merge and at most one notification
// is sent per call, listing the players whose entry actually changed.
// Canonical player records are never touched.
func (s *Store) UpdateLivePlayerStats(updates []LivePlayerUpdate) bool {
	if len(updates) == 0 {
		return false
	}

	s.mu.Lock()
	var next map[int]map[string]any
	changed := make(map[int]struct{})
	for _, update := range updates {
		current := s.liveStats
		if next != nil {
			current = next
		}
		prev := current[update.ID]

		merged := cloneStats(prev)
		for key, value := range update.Stats {
			merged[key] = cloneValue(value)
		}
		if statsEqual(prev, merged) {
			continue
		}

		if next == nil {
			next = make(map[int]map[string]any, len(s.liveStats)+len(updates))
			for id, entry := range s.liveStats {
				next[id] = entry
			}
		}
		next[update.ID] = merged
		changed[update.ID] = struct{}{}
	}

	if len(changed) == 0 {
		s.mu.Unlock()
		return false
	}

	s.liveStats = next
	ids := make([]int, 0, len(changed))
	for id := range changed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	change, listeners := s.commitLocked(ChangeLiveStats, ids)
	s.mu.Unlock()

	notify(change, listeners)
	return true
}

// LivePlayerStats returns a copy of the player's merged live fields.
func (s *Store) LivePlayerStats(playerID int) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.liveStats[playerID]
	if !ok {
		return nil, false
	}
	return cloneStats(entry), true
}

func cloneStats(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneStats(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}

// statsEqual treats a missing entry and an empty one as equal.
func statsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for key, left := range a {
		right, ok := b[key]
		if !ok || !valuesEqual(left, right) {
			return false
		}
	}
	return true
}

// valuesEqual compares decoded payload values structurally. Numbers compare by
// value regardless of their Go type, so 3, int64(3), 3.0 and json.Number("3")
// are all equal.
func valuesEqual(a, b any) bool {
	if left, ok := numberValue(a); ok {
		right, ok := numberValue(b)
		if !ok {
			return false
		}
		return left == right || (math.IsNaN(left) && math.IsNaN(right))
	}

	switch left := a.(type) {
	case map[string]any:
		right, ok := b.(map[string]any)
		return ok && statsEqual(left, right)
	case []any:
		right, ok := b.([]any)
		if !ok || len(left) != len(right) {
			return false
		}
		for i := range left {
			if !valuesEqual(left[i], right[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func numberValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
