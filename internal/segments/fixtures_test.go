package segments

import (
	"math"

	"github.com/solatis/segmentvet/internal/types"
)

// testCatalog returns a small catalog covering every category and both
// compatibility states.
func testCatalog() []types.Segment {
	return []types.Segment{
		{
			ID:                  "retail-electronics",
			Name:                "Electronics Shoppers",
			Description:         "Shoppers who purchased consumer electronics in the last 30 days",
			Category:            types.CategoryRetailGraph,
			KargoCompatible:     true,
			MatchRateRange:      types.MatchRateRange{60, 80},
			EstimatedCPM:        8,
			ActivationPath:      types.ActivationDirect,
			DataSource:          types.DataSourceAmazonFirstParty,
			MinimumAudienceSize: 2_000_000,
			SetupTime:           1,
			AdditionalCosts:     10,
			ViewabilityRate:     75,
		},
		{
			ID:                   "in-market-autos",
			Name:                 "Auto Intenders",
			Description:          "In-market for a new vehicle",
			Category:             types.CategoryInMarket,
			KargoCompatible:      true,
			MatchRateRange:       types.MatchRateRange{40, 60},
			EstimatedCPM:         12,
			TechnicalLimitations: []string{"Requires pixel implementation for attribution"},
			ActivationPath:       types.ActivationProgrammatic,
			DataSource:           types.DataSourceHybrid,
			MinimumAudienceSize:  1_000_000,
			SetupTime:            3,
			AdditionalCosts:      20,
			ViewabilityRate:      85,
		},
		{
			ID:                  "lifestyle-fitness",
			Name:                "Fitness Enthusiasts",
			Description:         "Regular buyers of sports nutrition and workout gear",
			Category:            types.CategoryLifestyle,
			KargoCompatible:     true,
			MatchRateRange:      types.MatchRateRange{50, 70},
			EstimatedCPM:        6,
			ActivationPath:      types.ActivationDirect,
			DataSource:          types.DataSourceThirdParty,
			MinimumAudienceSize: 500_000,
			SetupTime:           2,
			ViewabilityRate:     70,
		},
		{
			ID:                   "prime-video-viewers",
			Name:                 "Prime Video Viewers",
			Description:          "Households streaming Prime Video weekly",
			Category:             types.CategoryRestricted,
			KargoCompatible:      false,
			MatchRateRange:       types.MatchRateRange{0, 0},
			EstimatedCPM:         25,
			TechnicalLimitations: []string{"Restricted to Amazon O&O inventory", "Prime ecosystem data protected"},
			ActivationPath:       types.ActivationUnavailable,
			DataSource:           types.DataSourceAmazonFirstParty,
			MinimumAudienceSize:  10_000_000,
			SetupTime:            0,
			ViewabilityRate:      0,
		},
		{
			ID:                   "alexa-voice-shoppers",
			Name:                 "Alexa Voice Shoppers",
			Description:          "Customers ordering through voice assistants",
			Category:             types.CategoryRestricted,
			KargoCompatible:      false,
			MatchRateRange:       types.MatchRateRange{0, 0},
			EstimatedCPM:         22,
			TechnicalLimitations: []string{"Voice data privacy policy"},
			ActivationPath:       types.ActivationUnavailable,
			DataSource:           types.DataSourceAmazonFirstParty,
			MinimumAudienceSize:  3_000_000,
		},
		{
			ID:                  "demo-parents",
			Name:                "New Parents",
			Description:         "Households with children under two",
			Category:            types.CategoryDemographic,
			KargoCompatible:     true,
			MatchRateRange:      types.MatchRateRange{45, 55},
			EstimatedCPM:        9,
			ActivationPath:      types.ActivationDirect,
			DataSource:          types.DataSourceThirdParty,
			MinimumAudienceSize: 750_000,
			SetupTime:           1,
			AdditionalCosts:     5,
			ViewabilityRate:     80,
		},
	}
}

// testEngine returns an engine over the default model.
func testEngine() *Engine {
	e, err := NewEngine(DefaultModel())
	if err != nil {
		panic(err)
	}
	return e
}

// segmentIDs returns the ids of segments in order.
func segmentIDs(segments []types.Segment) []string {
	ids := make([]string, len(segments))
	for i, s := range segments {
		ids[i] = s.ID
	}
	return ids
}

// approxEqual compares floats with a relative tolerance.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
