// Package catalog loads, validates and stores the segment catalog.
//
// A Catalog is built once from one of three sources (the built-in reference
// data, a YAML/JSON file, or the SQL catalog store) and is immutable
// afterwards. Every accessor returns copies, so callers may freely sort or
// modify what they receive.
package catalog

import (
	"slices"

	"github.com/solatis/segmentvet/internal/types"
)

// Catalog is a validated, read-only list of segments in catalog order.
type Catalog struct {
	segments []types.Segment
	index    map[string]int
}

// New validates segments and returns a catalog holding a deep copy of them.
func New(segments []types.Segment) (*Catalog, error) {
	if err := Validate(segments); err != nil {
		return nil, err
	}

	c := &Catalog{
		segments: make([]types.Segment, len(segments)),
		index:    make(map[string]int, len(segments)),
	}
	for i, segment := range segments {
		c.segments[i] = normalize(cloneSegment(segment))
		c.index[segment.ID] = i
	}
	return c, nil
}

// Segments returns a copy of the catalog in catalog order.
func (c *Catalog) Segments() []types.Segment {
	return cloneSegments(c.segments)
}

// Len returns the number of segments.
func (c *Catalog) Len() int {
	return len(c.segments)
}

// Lookup returns the segment with the given id.
func (c *Catalog) Lookup(id string) (types.Segment, bool) {
	i, ok := c.index[id]
	if !ok {
		return types.Segment{}, false
	}
	return cloneSegment(c.segments[i]), true
}

// normalize gives every source the same empty-list representation:
// limitations are never nil, geo restrictions are nil when empty.
func normalize(s types.Segment) types.Segment {
	if s.TechnicalLimitations == nil {
		s.TechnicalLimitations = []string{}
	}
	if len(s.GeoRestrictions) == 0 {
		s.GeoRestrictions = nil
	}
	return s
}

func cloneSegments(in []types.Segment) []types.Segment {
	out := make([]types.Segment, len(in))
	for i, segment := range in {
		out[i] = cloneSegment(segment)
	}
	return out
}

// cloneSegment copies the slice fields so the copy shares no backing arrays.
func cloneSegment(s types.Segment) types.Segment {
	s.TechnicalLimitations = slices.Clone(s.TechnicalLimitations)
	s.GeoRestrictions = slices.Clone(s.GeoRestrictions)
	return s
}
