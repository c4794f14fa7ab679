// internal/segments/category.go
package segments

import "github.com/solatis/segmentvet/internal/types"

/*
 * Category aggregation.
 *
 * Groups the compatible segments of a selection by category, summing their
 * minimum audience sizes. Incompatible segments are skipped. Groups keep the
 * order in which their category first appears in the selection.
 */

// CategoryGroup counts compatible selected segments of one category.
type CategoryGroup struct {
	Category      types.Category `json:"category"`
	Count         int            `json:"count"`
	TotalAudience int64          `json:"totalAudience"`
}

// GroupByCategory groups the compatible segments of selected by category.
// Groups appear in first-seen order.
func GroupByCategory(selected []types.Segment) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[types.Category]int)
	for _, segment := range selected {
		if !segment.KargoCompatible {
			continue
		}
		i, ok := index[segment.Category]
		if !ok {
			index[segment.Category] = len(groups)
			groups = append(groups, CategoryGroup{Category: segment.Category})
			i = len(groups) - 1
		}
		groups[i].Count++
		groups[i].TotalAudience += segment.MinimumAudienceSize
	}
	return groups
}
