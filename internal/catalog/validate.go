package catalog

import (
	"fmt"
	"math"

	"github.com/solatis/segmentvet/internal/types"
)

// Validate checks every catalog invariant and returns the first violation,
// wrapped around the matching sentinel from the types package.
func Validate(segments []types.Segment) error {
	if len(segments) == 0 {
		return types.ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(segments))
	for i, s := range segments {
		if s.ID == "" {
			return fmt.Errorf("segment at index %d: %w", i, types.ErrEmptySegmentID)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("segment %q: %w", s.ID, types.ErrDuplicateSegmentID)
		}
		seen[s.ID] = struct{}{}

		if err := validateSegment(s); err != nil {
			return fmt.Errorf("segment %q: %w", s.ID, err)
		}
	}
	return nil
}

func validateSegment(s types.Segment) error {
	if !s.Category.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidCategory, s.Category)
	}
	if !s.ActivationPath.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidActivationPath, s.ActivationPath)
	}
	if !s.DataSource.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidDataSource, s.DataSource)
	}

	lo, hi := s.MatchRateRange.Min(), s.MatchRateRange.Max()
	if !finite(lo) || !finite(hi) || lo < 0 || lo > hi || hi > 100 {
		return fmt.Errorf("%w: got [%v, %v]", types.ErrMatchRateRange, lo, hi)
	}
	if !finite(s.ViewabilityRate) || s.ViewabilityRate < 0 || s.ViewabilityRate > 100 {
		return fmt.Errorf("%w: got %v", types.ErrViewabilityRange, s.ViewabilityRate)
	}

	switch {
	case !finite(s.EstimatedCPM) || s.EstimatedCPM < 0:
		return fmt.Errorf("%w: estimatedCPM %v", types.ErrNegativeValue, s.EstimatedCPM)
	case s.MinimumAudienceSize < 0:
		return fmt.Errorf("%w: minimumAudienceSize %d", types.ErrNegativeValue, s.MinimumAudienceSize)
	case s.SetupTime < 0:
		return fmt.Errorf("%w: setupTime %d", types.ErrNegativeValue, s.SetupTime)
	case !finite(s.AdditionalCosts) || s.AdditionalCosts < 0:
		return fmt.Errorf("%w: additionalCosts %v", types.ErrNegativeValue, s.AdditionalCosts)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
