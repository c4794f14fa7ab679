// internal/segments/filter.go
package segments

import (
	"strings"

	"github.com/solatis/segmentvet/internal/types"
)

/*
 * Catalog filtering.
 *
 * Applies the caller's filter state to the catalog and returns the matching
 * sublist in catalog order. Predicates are ANDed:
 *   - search: case-insensitive substring of name OR description ("" matches all)
 *   - category: "all" or exact category
 *   - compatibility: "all", "compatible" or "incompatible"
 *   - minMatchRate / maxCPM: optional bounds, zero disables them
 *
 * Filter values arriving as text go through ParseFilter, which never fails:
 * unknown category or compatibility values widen to "all".
 */

// CategoryAll is the category filter value matching every category.
const CategoryAll = "all"

// Compatibility selects segments by publisher compatibility.
type Compatibility string

const (
	CompatibilityAll          Compatibility = "all"
	CompatibilityCompatible   Compatibility = "compatible"
	CompatibilityIncompatible Compatibility = "incompatible"
)

// ParseCompatibility converts text to Compatibility.
// Unknown values return CompatibilityAll.
func ParseCompatibility(s string) Compatibility {
	switch c := Compatibility(strings.ToLower(strings.TrimSpace(s))); c {
	case CompatibilityCompatible, CompatibilityIncompatible:
		return c
	default:
		return CompatibilityAll
	}
}

// CategoryFilter matches one category or, when All is set, every category.
type CategoryFilter struct {
	All      bool
	Category types.Category
}

// AnyCategory returns the filter matching every category.
func AnyCategory() CategoryFilter {
	return CategoryFilter{All: true}
}

// OnlyCategory returns a filter for c. An invalid c widens to every category.
func OnlyCategory(c types.Category) CategoryFilter {
	if !c.Valid() {
		return AnyCategory()
	}
	return CategoryFilter{Category: c}
}

// ParseCategoryFilter converts text to a CategoryFilter.
// "all", "" and unknown categories return AnyCategory.
func ParseCategoryFilter(s string) CategoryFilter {
	return OnlyCategory(types.Category(strings.ToLower(strings.TrimSpace(s))))
}

// String returns the wire spelling of the filter.
func (f CategoryFilter) String() string {
	if f.All || !f.Category.Valid() {
		return CategoryAll
	}
	return string(f.Category)
}

// matches reports whether c passes the filter.
func (f CategoryFilter) matches(c types.Category) bool {
	if f.All || !f.Category.Valid() {
		return true
	}
	return f.Category == c
}

// Filter is the caller-owned filter state.
// The zero value matches every segment.
type Filter struct {
	SearchTerm    string
	Category      CategoryFilter
	Compatibility Compatibility
	MinMatchRate  float64 // keep segments whose match-rate midpoint >= MinMatchRate; 0 disables
	MaxCPM        float64 // keep segments whose CPM <= MaxCPM; 0 disables
}

// MatchAll returns the filter state {all, all, all}.
func MatchAll() Filter {
	return Filter{Category: AnyCategory(), Compatibility: CompatibilityAll}
}

// ParseFilter builds a Filter from text inputs, failing open on unknown values.
func ParseFilter(search, category, compatibility string) Filter {
	return Filter{
		SearchTerm:    search,
		Category:      ParseCategoryFilter(category),
		Compatibility: ParseCompatibility(compatibility),
	}
}

// Matches reports whether segment passes every predicate of f.
func (f Filter) Matches(segment types.Segment) bool {
	return f.matchesSearch(segment) &&
		f.Category.matches(segment.Category) &&
		f.matchesCompatibility(segment.KargoCompatible) &&
		f.matchesBounds(segment)
}

// matchesSearch checks the case-insensitive substring predicate.
func (f Filter) matchesSearch(segment types.Segment) bool {
	if f.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(f.SearchTerm)
	return strings.Contains(strings.ToLower(segment.Name), term) ||
		strings.Contains(strings.ToLower(segment.Description), term)
}

// matchesCompatibility checks the compatibility predicate.
// Values outside the closed set behave as CompatibilityAll.
func (f Filter) matchesCompatibility(compatible bool) bool {
	switch f.Compatibility {
	case CompatibilityCompatible:
		return compatible
	case CompatibilityIncompatible:
		return !compatible
	default:
		return true
	}
}

// matchesBounds checks the optional match-rate and CPM bounds.
func (f Filter) matchesBounds(segment types.Segment) bool {
	if f.MinMatchRate > 0 && segment.MatchRateRange.Midpoint() < f.MinMatchRate {
		return false
	}
	if f.MaxCPM > 0 && segment.EstimatedCPM > f.MaxCPM {
		return false
	}
	return true
}

// FilterSegments returns the segments of catalog matching f, in catalog order.
// Never returns nil; an empty result is an empty slice.
func FilterSegments(catalog []types.Segment, f Filter) []types.Segment {
	out := make([]types.Segment, 0, len(catalog))
	for _, segment := range catalog {
		if f.Matches(segment) {
			out = append(out, segment)
		}
	}
	return out
}

// Partition splits catalog into segments matching f and the rest.
// Both lists preserve catalog order; together they contain every segment once.
func Partition(catalog []types.Segment, f Filter) (in, out []types.Segment) {
	in = make([]types.Segment, 0, len(catalog))
	out = make([]types.Segment, 0)
	for _, segment := range catalog {
		if f.Matches(segment) {
			in = append(in, segment)
		} else {
			out = append(out, segment)
		}
	}
	return in, out
}

// SplitByCompatibility splits segments into compatible and restricted lists.
func SplitByCompatibility(segments []types.Segment) (compatible, restricted []types.Segment) {
	return Partition(segments, Filter{Compatibility: CompatibilityCompatible})
}
