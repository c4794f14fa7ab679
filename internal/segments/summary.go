// internal/segments/summary.go
package segments

import (
	"math"

	"github.com/solatis/segmentvet/internal/types"
)

/*
 * Catalog summary.
 *
 * Headline counts shown above the segment list. Compatible, restricted and
 * the average match rate describe the filtered view, so they move with the
 * caller's filter. Selection counts resolve against the whole catalog: a
 * selected segment stays selected when the filter hides it.
 */

// Summary is the headline count block shown above the catalog.
type Summary struct {
	Total                   int `json:"total"`   // whole catalog
	Matched                 int `json:"matched"` // segments passing the filter
	Compatible              int `json:"compatible"`
	Restricted              int `json:"restricted"`
	Selected                int `json:"selected"`
	SelectedCompatible      int `json:"selectedCompatible"`
	AverageMatchRatePercent int `json:"averageMatchRatePercent"` // rounded mean midpoint over compatible matched segments
}

// Summarize counts the compatible and restricted segments of catalog that
// pass f, rounds their compatible mean match rate, and counts the selection.
func Summarize(catalog []types.Segment, f Filter, selection Selection) Summary {
	matched := FilterSegments(catalog, f)
	compatible, restricted := SplitByCompatibility(matched)
	selected := selection.Resolve(catalog)

	summary := Summary{
		Total:              len(catalog),
		Matched:            len(matched),
		Compatible:         len(compatible),
		Restricted:         len(restricted),
		Selected:           len(selected),
		SelectedCompatible: len(compatibleOnly(selected)),
	}

	if len(compatible) > 0 {
		var sum float64
		for _, segment := range compatible {
			sum += segment.MatchRateRange.Midpoint()
		}
		summary.AverageMatchRatePercent = int(math.Round(sum / float64(len(compatible))))
	}
	return summary
}
