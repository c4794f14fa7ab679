// internal/segments/model.go
package segments

import (
	"fmt"
	"math"

	"github.com/solatis/segmentvet/internal/types"
)

/*
 * Projection model constants.
 *
 * The cost split and the standard-path comparison are business assumptions,
 * not derived figures. They live in Model so operators can tune them through
 * configuration; DefaultModel returns the reference values.
 *
 * Shares are expressed in percent of budget (85/12/3) and must sum to 100.
 * Standard-path factors are plain multipliers applied to the premium-path
 * averages.
 */

// Reference values for DefaultModel.
const (
	DefaultBudget              = 100000.0
	DefaultWorkingMediaPercent = 85.0
	DefaultPlatformFeePercent  = 12.0
	DefaultManagementPercent   = 3.0

	DefaultStandardWorkingMediaPercent = 65.0
	DefaultStandardMatchRateFactor     = 0.6 // 40% match-rate degradation
	DefaultStandardCPMFactor           = 1.2 // 20% CPM premium
	DefaultStandardViewabilityFactor   = 0.8 // 20% lower viewability

	// shareTolerance absorbs float noise when checking shares sum to 100.
	shareTolerance = 1e-9
)

// StandardPath describes the non-premium distribution path used as a
// comparison baseline.
type StandardPath struct {
	WorkingMediaPercent float64
	MatchRateFactor     float64
	CPMFactor           float64
	ViewabilityFactor   float64
}

// Model holds the fixed fractions and multipliers of the projection.
type Model struct {
	DefaultBudget       float64
	WorkingMediaPercent float64
	PlatformFeePercent  float64
	ManagementPercent   float64
	StandardPath        StandardPath
}

// DefaultModel returns the reference projection model.
func DefaultModel() Model {
	return Model{
		DefaultBudget:       DefaultBudget,
		WorkingMediaPercent: DefaultWorkingMediaPercent,
		PlatformFeePercent:  DefaultPlatformFeePercent,
		ManagementPercent:   DefaultManagementPercent,
		StandardPath: StandardPath{
			WorkingMediaPercent: DefaultStandardWorkingMediaPercent,
			MatchRateFactor:     DefaultStandardMatchRateFactor,
			CPMFactor:           DefaultStandardCPMFactor,
			ViewabilityFactor:   DefaultStandardViewabilityFactor,
		},
	}
}

// Validate checks shares are non-negative and sum to 100, and factors are
// non-negative finite numbers.
func (m Model) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"default_budget", m.DefaultBudget},
		{"working_media_percent", m.WorkingMediaPercent},
		{"platform_fee_percent", m.PlatformFeePercent},
		{"management_percent", m.ManagementPercent},
		{"standard_path.working_media_percent", m.StandardPath.WorkingMediaPercent},
		{"standard_path.match_rate_factor", m.StandardPath.MatchRateFactor},
		{"standard_path.cpm_factor", m.StandardPath.CPMFactor},
		{"standard_path.viewability_factor", m.StandardPath.ViewabilityFactor},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative finite number, got %v", types.ErrInvalidModel, f.name, f.value)
		}
	}

	sum := m.WorkingMediaPercent + m.PlatformFeePercent + m.ManagementPercent
	if math.Abs(sum-100) > shareTolerance {
		return fmt.Errorf("%w: budget shares must sum to 100, got %v", types.ErrInvalidModel, sum)
	}
	if m.StandardPath.WorkingMediaPercent > 100 {
		return fmt.Errorf("%w: standard_path.working_media_percent must not exceed 100, got %v", types.ErrInvalidModel, m.StandardPath.WorkingMediaPercent)
	}
	return nil
}

// percentOf returns pct percent of amount.
// The share is scaled first so a finite amount stays finite for pct <= 100.
func percentOf(amount, pct float64) float64 {
	return amount * (pct / 100)
}
