// internal/segments/projection.go
package segments

import "github.com/solatis/segmentvet/internal/types"

/*
 * Performance projection.
 *
 * Projects campaign figures for the compatible subset C of a selection:
 *   totalAudience        = sum(minimumAudienceSize)
 *   averageMatchRate     = mean(midpoint(matchRateRange))
 *   averageCPM           = mean(estimatedCPM)
 *   averageViewability   = mean(viewabilityRate)
 *   costPremium          = mean(additionalCosts)
 *   workingMediaAmount   = budget * workingMediaPercent / 100
 *   estimatedImpressions = workingMediaAmount / averageCPM * 1000 (0 when averageCPM is 0)
 *   projectedReach       = totalAudience * averageMatchRate / 100
 *   totalSetupTime       = max(setupTime)
 *
 * Empty C yields all zeros except WorkingMediaPercentage. Incompatible
 * segments in the selection are ignored.
 *
 * Budget is used as given. Negative budgets produce proportionally negative
 * money and impression figures; constraining input is the caller's job.
 */

// Projection holds aggregate figures for a selection at a budget.
type Projection struct {
	TotalAudience          int64   `json:"totalAudience"`
	AverageMatchRate       float64 `json:"averageMatchRate"`
	AverageCPM             float64 `json:"averageCPM"`
	AverageViewability     float64 `json:"averageViewability"`
	CostPremium            float64 `json:"costPremium"`
	WorkingMediaAmount     float64 `json:"workingMediaAmount"`
	WorkingMediaPercentage float64 `json:"workingMediaPercentage"`
	EstimatedImpressions   float64 `json:"estimatedImpressions"`
	ProjectedReach         float64 `json:"projectedReach"`
	TotalSetupTime         int     `json:"totalSetupTime"` // weeks
	CompatibleCount        int     `json:"compatibleCount"`
}

// CostSplit divides a budget into working media and fees.
type CostSplit struct {
	WorkingMedia      float64 `json:"workingMedia"`
	PlatformFees      float64 `json:"platformFees"`
	AccountManagement float64 `json:"accountManagement"`
}

// Total returns the sum of the three parts.
func (c CostSplit) Total() float64 {
	return c.WorkingMedia + c.PlatformFees + c.AccountManagement
}

// ComparisonRow is one distribution path in the comparison table.
type ComparisonRow struct {
	Path         string  `json:"path"`
	WorkingMedia float64 `json:"workingMedia"`
	MatchRate    float64 `json:"matchRate"`
	CPM          float64 `json:"cpm"`
	Viewability  float64 `json:"viewability"`
}

// Comparison contrasts the premium path with the standard path.
type Comparison struct {
	Premium  ComparisonRow `json:"premium"`
	Standard ComparisonRow `json:"standard"`
}

// Rows returns the comparison as display rows, premium first.
func (c Comparison) Rows() []ComparisonRow {
	return []ComparisonRow{c.Premium, c.Standard}
}

// Comparison path labels.
const (
	PremiumPathLabel  = "Kargo + Amazon DSP"
	StandardPathLabel = "Standard DSP Path"
)

// SegmentBreakdown is the per-segment contribution of a compatible selection.
type SegmentBreakdown struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Audience  int64          `json:"audience"`
	MatchRate float64        `json:"matchRate"`
	CPM       float64        `json:"cpm"`
	Category  types.Category `json:"category"`
}

// Report bundles every computed figure for one selection and budget.
type Report struct {
	Budget     float64            `json:"budget"`
	Projection Projection         `json:"projection"`
	CostSplit  CostSplit          `json:"costSplit"`
	Comparison Comparison         `json:"comparison"`
	Breakdown  []SegmentBreakdown `json:"breakdown"`
	Categories []CategoryGroup    `json:"categories"`
}

// ComputeProjection projects campaign figures for selected at budget.
func (e *Engine) ComputeProjection(selected []types.Segment, budget float64) Projection {
	result := Projection{WorkingMediaPercentage: e.model.WorkingMediaPercent}

	compatible := compatibleOnly(selected)
	if len(compatible) == 0 {
		return result
	}

	var matchSum, cpmSum, viewSum, premiumSum float64
	for _, segment := range compatible {
		result.TotalAudience += segment.MinimumAudienceSize
		matchSum += segment.MatchRateRange.Midpoint()
		cpmSum += segment.EstimatedCPM
		viewSum += segment.ViewabilityRate
		premiumSum += segment.AdditionalCosts
		if segment.SetupTime > result.TotalSetupTime {
			result.TotalSetupTime = segment.SetupTime
		}
	}

	n := float64(len(compatible))
	result.CompatibleCount = len(compatible)
	result.AverageMatchRate = matchSum / n
	result.AverageCPM = cpmSum / n
	result.AverageViewability = viewSum / n
	result.CostPremium = premiumSum / n
	result.WorkingMediaAmount = percentOf(budget, e.model.WorkingMediaPercent)
	if result.AverageCPM != 0 {
		result.EstimatedImpressions = result.WorkingMediaAmount / result.AverageCPM * 1000
	}
	result.ProjectedReach = float64(result.TotalAudience) * result.AverageMatchRate / 100

	return result
}

// CostSplit divides budget by the model's fixed shares.
func (e *Engine) CostSplit(budget float64) CostSplit {
	return CostSplit{
		WorkingMedia:      percentOf(budget, e.model.WorkingMediaPercent),
		PlatformFees:      percentOf(budget, e.model.PlatformFeePercent),
		AccountManagement: percentOf(budget, e.model.ManagementPercent),
	}
}

// Compare derives the standard-path baseline from a projection.
func (e *Engine) Compare(p Projection) Comparison {
	sp := e.model.StandardPath
	return Comparison{
		Premium: ComparisonRow{
			Path:         PremiumPathLabel,
			WorkingMedia: e.model.WorkingMediaPercent,
			MatchRate:    p.AverageMatchRate,
			CPM:          p.AverageCPM,
			Viewability:  p.AverageViewability,
		},
		Standard: ComparisonRow{
			Path:         StandardPathLabel,
			WorkingMedia: sp.WorkingMediaPercent,
			MatchRate:    p.AverageMatchRate * sp.MatchRateFactor,
			CPM:          p.AverageCPM * sp.CPMFactor,
			Viewability:  p.AverageViewability * sp.ViewabilityFactor,
		},
	}
}

// Breakdown lists the contribution of each compatible selected segment,
// in selection order.
func Breakdown(selected []types.Segment) []SegmentBreakdown {
	compatible := compatibleOnly(selected)
	out := make([]SegmentBreakdown, 0, len(compatible))
	for _, segment := range compatible {
		out = append(out, SegmentBreakdown{
			ID:        segment.ID,
			Name:      segment.Name,
			Audience:  segment.MinimumAudienceSize,
			MatchRate: segment.MatchRateRange.Midpoint(),
			CPM:       segment.EstimatedCPM,
			Category:  segment.Category,
		})
	}
	return out
}

// compatibleOnly returns the segments usable on the publisher's inventory.
func compatibleOnly(selected []types.Segment) []types.Segment {
	out := make([]types.Segment, 0, len(selected))
	for _, segment := range selected {
		if segment.KargoCompatible {
			out = append(out, segment)
		}
	}
	return out
}
