package api

import (
	"github.com/solatis/segmentvet/internal/segments"
	"github.com/solatis/segmentvet/internal/types"
)

// Request and response messages of the SegmentAPI service. Both the gRPC JSON
// codec and the HTTP handlers encode these types directly.

// ListSegmentsRequest carries the caller's filter state as text.
// Unknown category or compatibility values widen to "all".
type ListSegmentsRequest struct {
	Search        string  `json:"search,omitempty"`
	Category      string  `json:"category,omitempty"`
	Compatibility string  `json:"compatibility,omitempty"`
	MinMatchRate  float64 `json:"minMatchRate,omitempty"`
	MaxCPM        float64 `json:"maxCPM,omitempty"`
}

// ListSegmentsResponse lists matching segments in catalog order.
type ListSegmentsResponse struct {
	Segments      []types.Segment `json:"segments"`
	Matched       int             `json:"matched"`
	Total         int             `json:"total"`
	Category      string          `json:"category"`      // effective category filter
	Compatibility string          `json:"compatibility"` // effective compatibility filter
}

// ToggleSelectionRequest toggles SegmentID in Selection.
type ToggleSelectionRequest struct {
	Selection []string `json:"selection"`
	SegmentID string   `json:"segmentId"`
}

// ToggleSelectionResponse returns the new selection and its resolved segments.
type ToggleSelectionResponse struct {
	Selection []string        `json:"selection"`
	Segments  []types.Segment `json:"segments"`
	Selected  bool            `json:"selected"` // whether SegmentID is now selected
}

// ComputeProjectionRequest asks for a full report on a selection.
// A nil Budget uses the model's default budget.
type ComputeProjectionRequest struct {
	SegmentIDs []string `json:"segmentIds"`
	Budget     *float64 `json:"budget,omitempty"`
}

// ComputeProjectionResponse carries the report and the ids that were not
// found in the catalog.
type ComputeProjectionResponse struct {
	Report     segments.Report `json:"report"`
	UnknownIDs []string        `json:"unknownIds"`
}

// GroupByCategoryRequest names the selected segments.
type GroupByCategoryRequest struct {
	SegmentIDs []string `json:"segmentIds"`
}

// GroupByCategoryResponse lists category groups in first-seen order.
type GroupByCategoryResponse struct {
	Categories []segments.CategoryGroup `json:"categories"`
}

// CategorizeLimitationRequest carries one limitation text.
type CategorizeLimitationRequest struct {
	Text string `json:"text"`
}

// CategorizeLimitationResponse names the matched category.
type CategorizeLimitationResponse struct {
	Category segments.LimitationCategory `json:"category"`
}

// AnalyzeLimitationsRequest is empty; the whole catalog is analyzed.
type AnalyzeLimitationsRequest struct{}

// AnalyzeLimitationsResponse carries the analysis and the category definitions.
type AnalyzeLimitationsResponse struct {
	Analysis    segments.LimitationAnalysis   `json:"analysis"`
	Definitions []segments.LimitationCategory `json:"definitions"`
}

// SummarizeRequest names the current selection and the filter whose view
// the compatible and restricted counts describe.
type SummarizeRequest struct {
	Selected      []string `json:"selected"`
	Search        string   `json:"search,omitempty"`
	Category      string   `json:"category,omitempty"`
	Compatibility string   `json:"compatibility,omitempty"`
	MinMatchRate  float64  `json:"minMatchRate,omitempty"`
	MaxCPM        float64  `json:"maxCPM,omitempty"`
}

// SummarizeResponse carries the catalog headline counts.
type SummarizeResponse struct {
	Publisher string           `json:"publisher"`
	Summary   segments.Summary `json:"summary"`
}
