// internal/segments/selection.go
package segments

import "github.com/solatis/segmentvet/internal/types"

/*
 * Selection tracking.
 *
 * Selection is an insertion-ordered set of segment ids owned by the caller.
 * Operations return new values and never mutate the receiver, so a caller can
 * keep the previous selection for undo or comparison.
 *
 * Resolve derives segment records by catalog lookup in selection order; ids
 * missing from the catalog are dropped. Aggregations downstream are
 * order-independent.
 */

// Selection is an ordered set of segment ids without duplicates.
type Selection []string

// NewSelection builds a selection from ids, keeping the first occurrence of
// each id and skipping empty ids.
func NewSelection(ids ...string) Selection {
	seen := make(map[string]struct{}, len(ids))
	out := make(Selection, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, existing := range s {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle removes id when present, otherwise appends it.
// Returns a new selection; s is left unchanged.
func (s Selection) Toggle(id string) Selection {
	out := make(Selection, 0, len(s)+1)
	removed := false
	for _, existing := range s {
		if existing == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, id)
	}
	return out
}

// Equal reports whether s and other hold the same ids, ignoring order.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for _, id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// IDs returns a copy of the selected ids.
func (s Selection) IDs() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Resolve returns the selected segments in selection order.
// Ids with no matching catalog record are dropped silently.
func (s Selection) Resolve(catalog []types.Segment) []types.Segment {
	byID := make(map[string]int, len(catalog))
	for i, segment := range catalog {
		if _, ok := byID[segment.ID]; !ok {
			byID[segment.ID] = i
		}
	}

	out := make([]types.Segment, 0, len(s))
	for _, id := range s {
		if i, ok := byID[id]; ok {
			out = append(out, catalog[i])
		}
	}
	return out
}

// ToggleSelection applies Toggle and resolves the result against catalog.
func ToggleSelection(catalog []types.Segment, s Selection, id string) (Selection, []types.Segment) {
	next := s.Toggle(id)
	return next, next.Resolve(catalog)
}
