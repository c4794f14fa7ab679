// internal/segments/projection_test.go
package segments

import (
	"math"
	"testing"

	"github.com/solatis/segmentvet/internal/types"
)

func TestComputeProjection_SingleSegmentScenario(t *testing.T) {
	selected := []types.Segment{{
		ID:                  "a",
		KargoCompatible:     true,
		MinimumAudienceSize: 1_000_000,
		MatchRateRange:      types.MatchRateRange{40, 60},
		EstimatedCPM:        10,
		ViewabilityRate:     80,
		SetupTime:           2,
		AdditionalCosts:     0,
	}}

	p := testEngine().ComputeProjection(selected, 100000)

	if p.TotalAudience != 1_000_000 {
		t.Errorf("TotalAudience = %d, want 1000000", p.TotalAudience)
	}
	if p.AverageMatchRate != 50 {
		t.Errorf("AverageMatchRate = %v, want 50", p.AverageMatchRate)
	}
	if p.AverageCPM != 10 {
		t.Errorf("AverageCPM = %v, want 10", p.AverageCPM)
	}
	if p.WorkingMediaAmount != 85000 {
		t.Errorf("WorkingMediaAmount = %v, want 85000", p.WorkingMediaAmount)
	}
	if p.EstimatedImpressions != 8_500_000 {
		t.Errorf("EstimatedImpressions = %v, want 8500000", p.EstimatedImpressions)
	}
	if p.ProjectedReach != 500_000 {
		t.Errorf("ProjectedReach = %v, want 500000", p.ProjectedReach)
	}
	if p.TotalSetupTime != 2 {
		t.Errorf("TotalSetupTime = %v, want 2", p.TotalSetupTime)
	}
	if p.AverageViewability != 80 {
		t.Errorf("AverageViewability = %v, want 80", p.AverageViewability)
	}
	if p.CostPremium != 0 {
		t.Errorf("CostPremium = %v, want 0", p.CostPremium)
	}
	if p.WorkingMediaPercentage != 85 {
		t.Errorf("WorkingMediaPercentage = %v, want 85", p.WorkingMediaPercentage)
	}
}

func TestComputeProjection_IgnoresIncompatible(t *testing.T) {
	catalog := testCatalog()
	selected := NewSelection("retail-electronics", "in-market-autos", "prime-video-viewers").Resolve(catalog)

	p := testEngine().ComputeProjection(selected, 200000)

	if p.CompatibleCount != 2 {
		t.Fatalf("CompatibleCount = %d, want 2", p.CompatibleCount)
	}
	if p.TotalAudience != 3_000_000 {
		t.Errorf("TotalAudience = %d, want 3000000", p.TotalAudience)
	}
	// midpoints 70 and 50
	if p.AverageMatchRate != 60 {
		t.Errorf("AverageMatchRate = %v, want 60", p.AverageMatchRate)
	}
	if p.AverageCPM != 10 {
		t.Errorf("AverageCPM = %v, want 10", p.AverageCPM)
	}
	if p.AverageViewability != 80 {
		t.Errorf("AverageViewability = %v, want 80", p.AverageViewability)
	}
	if p.CostPremium != 15 {
		t.Errorf("CostPremium = %v, want 15", p.CostPremium)
	}
	if p.TotalSetupTime != 3 {
		t.Errorf("TotalSetupTime = %v, want 3", p.TotalSetupTime)
	}
	if p.EstimatedImpressions != 17_000_000 {
		t.Errorf("EstimatedImpressions = %v, want 17000000", p.EstimatedImpressions)
	}
	if p.ProjectedReach != 1_800_000 {
		t.Errorf("ProjectedReach = %v, want 1800000", p.ProjectedReach)
	}
}

func TestComputeProjection_ZeroCases(t *testing.T) {
	catalog := testCatalog()
	tests := []struct {
		name     string
		selected []types.Segment
	}{
		{"nil selection", nil},
		{"only incompatible", NewSelection("prime-video-viewers", "alexa-voice-shoppers").Resolve(catalog)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testEngine().ComputeProjection(tt.selected, 100000)
			want := Projection{WorkingMediaPercentage: 85}
			if got != want {
				t.Errorf("ComputeProjection() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestComputeProjection_ZeroCPMGuard(t *testing.T) {
	selected := []types.Segment{
		{ID: "free-1", KargoCompatible: true, MinimumAudienceSize: 100, MatchRateRange: types.MatchRateRange{10, 20}},
		{ID: "free-2", KargoCompatible: true, MinimumAudienceSize: 300, MatchRateRange: types.MatchRateRange{30, 40}},
	}
	p := testEngine().ComputeProjection(selected, 100000)
	if p.EstimatedImpressions != 0 {
		t.Errorf("EstimatedImpressions = %v, want 0", p.EstimatedImpressions)
	}
	if math.IsNaN(p.EstimatedImpressions) || math.IsInf(p.EstimatedImpressions, 0) {
		t.Errorf("EstimatedImpressions not finite: %v", p.EstimatedImpressions)
	}
	if p.ProjectedReach != 400*25.0/100 {
		t.Errorf("ProjectedReach = %v, want 100", p.ProjectedReach)
	}
}

func TestComputeProjection_NegativeBudgetIsProportional(t *testing.T) {
	selected := NewSelection("retail-electronics").Resolve(testCatalog())
	e := testEngine()
	pos := e.ComputeProjection(selected, 50000)
	neg := e.ComputeProjection(selected, -50000)
	if neg.WorkingMediaAmount != -pos.WorkingMediaAmount {
		t.Errorf("WorkingMediaAmount = %v, want %v", neg.WorkingMediaAmount, -pos.WorkingMediaAmount)
	}
	if neg.EstimatedImpressions != -pos.EstimatedImpressions {
		t.Errorf("EstimatedImpressions = %v, want %v", neg.EstimatedImpressions, -pos.EstimatedImpressions)
	}
	if neg.ProjectedReach != pos.ProjectedReach {
		t.Errorf("ProjectedReach depends on budget: %v vs %v", neg.ProjectedReach, pos.ProjectedReach)
	}
}

func TestCostSplit(t *testing.T) {
	split := testEngine().CostSplit(100000)
	if split.WorkingMedia != 85000 {
		t.Errorf("WorkingMedia = %v, want 85000", split.WorkingMedia)
	}
	if split.PlatformFees != 12000 {
		t.Errorf("PlatformFees = %v, want 12000", split.PlatformFees)
	}
	if split.AccountManagement != 3000 {
		t.Errorf("AccountManagement = %v, want 3000", split.AccountManagement)
	}
	if split.Total() != 100000 {
		t.Errorf("Total() = %v, want 100000", split.Total())
	}
}

func TestCompare(t *testing.T) {
	p := Projection{AverageMatchRate: 50, AverageCPM: 10, AverageViewability: 80}
	c := testEngine().Compare(p)

	if c.Premium.Path != PremiumPathLabel || c.Premium.WorkingMedia != 85 {
		t.Errorf("Premium = %+v", c.Premium)
	}
	if c.Premium.MatchRate != 50 || c.Premium.CPM != 10 || c.Premium.Viewability != 80 {
		t.Errorf("Premium figures = %+v", c.Premium)
	}
	if c.Standard.WorkingMedia != 65 {
		t.Errorf("Standard.WorkingMedia = %v, want 65", c.Standard.WorkingMedia)
	}
	if !approxEqual(c.Standard.MatchRate, 30) {
		t.Errorf("Standard.MatchRate = %v, want 30", c.Standard.MatchRate)
	}
	if !approxEqual(c.Standard.CPM, 12) {
		t.Errorf("Standard.CPM = %v, want 12", c.Standard.CPM)
	}
	if !approxEqual(c.Standard.Viewability, 64) {
		t.Errorf("Standard.Viewability = %v, want 64", c.Standard.Viewability)
	}
	if rows := c.Rows(); len(rows) != 2 || rows[0].Path != PremiumPathLabel {
		t.Errorf("Rows() = %+v", rows)
	}
}

func TestCompare_CustomModel(t *testing.T) {
	model := DefaultModel()
	model.StandardPath.MatchRateFactor = 0.5
	model.StandardPath.CPMFactor = 2
	e, err := NewEngine(model)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	c := e.Compare(Projection{AverageMatchRate: 40, AverageCPM: 5})
	if c.Standard.MatchRate != 20 || c.Standard.CPM != 10 {
		t.Errorf("Standard = %+v", c.Standard)
	}
}

func TestBreakdown(t *testing.T) {
	selected := NewSelection("in-market-autos", "alexa-voice-shoppers", "demo-parents").Resolve(testCatalog())
	got := Breakdown(selected)
	if len(got) != 2 {
		t.Fatalf("len(Breakdown()) = %d, want 2", len(got))
	}
	if got[0].ID != "in-market-autos" || got[0].MatchRate != 50 || got[0].CPM != 12 || got[0].Audience != 1_000_000 {
		t.Errorf("Breakdown()[0] = %+v", got[0])
	}
	if got[1].Category != types.CategoryDemographic {
		t.Errorf("Breakdown()[1].Category = %v", got[1].Category)
	}
}

func TestEngine_Report(t *testing.T) {
	selected := NewSelection("retail-electronics", "lifestyle-fitness").Resolve(testCatalog())
	r := testEngine().Report(selected, 100000)
	if r.Budget != 100000 {
		t.Errorf("Budget = %v", r.Budget)
	}
	if r.Projection.CompatibleCount != 2 {
		t.Errorf("Projection.CompatibleCount = %d", r.Projection.CompatibleCount)
	}
	if r.CostSplit.WorkingMedia != 85000 {
		t.Errorf("CostSplit.WorkingMedia = %v", r.CostSplit.WorkingMedia)
	}
	if len(r.Breakdown) != 2 || len(r.Categories) != 2 {
		t.Errorf("Breakdown/Categories sizes = %d/%d", len(r.Breakdown), len(r.Categories))
	}
	if r.Comparison.Premium.MatchRate != r.Projection.AverageMatchRate {
		t.Errorf("Comparison not derived from projection")
	}
}

func TestCostSplit_LargeBudgetStaysFinite(t *testing.T) {
	budget := math.MaxFloat64
	split := testEngine().CostSplit(budget)
	for name, v := range map[string]float64{
		"WorkingMedia":      split.WorkingMedia,
		"PlatformFees":      split.PlatformFees,
		"AccountManagement": split.AccountManagement,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("%s = %v, want finite", name, v)
		}
	}
}

func TestReport_Finite(t *testing.T) {
	selected := NewSelection("retail-electronics").Resolve(testCatalog())
	e := testEngine()

	if !e.Report(selected, 100000).Finite() {
		t.Error("Finite() = false for an ordinary budget")
	}
	// 85% of 1e308 at an $8 CPM is past the float64 range in impressions.
	if e.Report(selected, 1e308).Finite() {
		t.Error("Finite() = true for an overflowing projection")
	}
	if !e.Report(nil, 1e308).Finite() {
		t.Error("Finite() = false with no compatible segments")
	}
}
