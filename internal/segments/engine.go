// internal/segments/engine.go
package segments

import (
	"math"

	"github.com/solatis/segmentvet/internal/types"
)

/*
 * Projection engine.
 *
 * Binds one validated Model to the calculations that depend on it
 * (projection, cost split, path comparison) and to the limitation
 * categorizer. Report bundles every figure for one selection and budget.
 *
 * Every input is finite, but a budget near the float64 limit can still push
 * impressions past it. Report.Finite lets callers reject such reports
 * instead of encoding infinities.
 */

// Engine binds the projection model to the core calculations.
// Holds no mutable state; safe for concurrent use once constructed.
type Engine struct {
	model       Model
	categorizer *LimitationCategorizer
}

// NewEngine creates an engine for the given model.
// Returns ErrInvalidModel when the model fails validation.
func NewEngine(model Model) (*Engine, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		model:       model,
		categorizer: DefaultLimitationCategorizer(),
	}, nil
}

// Model returns the engine's projection model.
func (e *Engine) Model() Model {
	return e.model
}

// Categorizer returns the limitation categorizer used by the engine.
func (e *Engine) Categorizer() *LimitationCategorizer {
	return e.categorizer
}

// Report computes every figure shown for a selection at the given budget.
func (e *Engine) Report(selected []types.Segment, budget float64) Report {
	projection := e.ComputeProjection(selected, budget)
	return Report{
		Budget:     budget,
		Projection: projection,
		CostSplit:  e.CostSplit(budget),
		Comparison: e.Compare(projection),
		Breakdown:  Breakdown(selected),
		Categories: GroupByCategory(selected),
	}
}

// Finite reports whether every monetary and volume figure of r is finite.
func (r Report) Finite() bool {
	p := r.Projection
	for _, v := range []float64{
		r.Budget,
		p.WorkingMediaAmount,
		p.EstimatedImpressions,
		p.ProjectedReach,
		r.CostSplit.WorkingMedia,
		r.CostSplit.PlatformFees,
		r.CostSplit.AccountManagement,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
