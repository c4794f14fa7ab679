// Package api implements the SegmentAPI service shared by the gRPC and
// HTTP/JSON surfaces.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/solatis/segmentvet/internal/catalog"
	"github.com/solatis/segmentvet/internal/segments"
	"github.com/solatis/segmentvet/internal/types"
)

const tracerName = "github.com/solatis/segmentvet/internal/core/api"

// SegmentService implements SegmentAPIServer.
// Thin orchestration layer over the immutable catalog and the segments engine;
// safe for concurrent use.
type SegmentService struct {
	catalog   *catalog.Catalog
	engine    *segments.Engine
	publisher string
	logger    *slog.Logger
}

// NewSegmentService creates service instance with dependencies.
func NewSegmentService(c *catalog.Catalog, engine *segments.Engine, publisher string, logger *slog.Logger) (*SegmentService, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SegmentService{
		catalog:   c,
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// ListSegments filters the catalog.
func (s *SegmentService) ListSegments(ctx context.Context, req *ListSegmentsRequest) (*ListSegmentsResponse, error) {
	if req == nil {
		req = &ListSegmentsRequest{}
	}

	f := parseFilter(req.Search, req.Category, req.Compatibility, req.MinMatchRate, req.MaxCPM)

	all := s.catalog.Segments()
	matched := segments.FilterSegments(all, f)

	return &ListSegmentsResponse{
		Segments:      matched,
		Matched:       len(matched),
		Total:         len(all),
		Category:      f.Category.String(),
		Compatibility: string(f.Compatibility),
	}, nil
}

// ToggleSelection adds or removes one segment id from the caller's selection.
func (s *SegmentService) ToggleSelection(ctx context.Context, req *ToggleSelectionRequest) (*ToggleSelectionResponse, error) {
	if req == nil || req.SegmentID == "" {
		return nil, toStatus(ErrEmptyToggleID)
	}

	next, resolved := segments.ToggleSelection(s.catalog.Segments(), segments.NewSelection(req.Selection...), req.SegmentID)

	return &ToggleSelectionResponse{
		Selection: next.IDs(),
		Segments:  resolved,
		Selected:  next.Contains(req.SegmentID),
	}, nil
}

// ComputeProjection builds the full report for a selection at a budget.
func (s *SegmentService) ComputeProjection(ctx context.Context, req *ComputeProjectionRequest) (*ComputeProjectionResponse, error) {
	if req == nil {
		req = &ComputeProjectionRequest{}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "segments.ComputeProjection")
	defer span.End()

	budget := s.engine.Model().DefaultBudget
	if req.Budget != nil {
		budget = *req.Budget
	}
	if math.IsNaN(budget) || math.IsInf(budget, 0) {
		err := fmt.Errorf("%w, got %v", types.ErrInvalidBudget, budget)
		span.SetStatus(codes.Error, err.Error())
		return nil, toStatus(err)
	}

	start := time.Now()
	selection := segments.NewSelection(req.SegmentIDs...)
	resolved := selection.Resolve(s.catalog.Segments())
	report := s.engine.Report(resolved, budget)
	if !report.Finite() {
		err := fmt.Errorf("%w, budget %v overflows the projection", types.ErrInvalidBudget, budget)
		span.SetStatus(codes.Error, err.Error())
		return nil, toStatus(err)
	}

	span.SetAttributes(
		attribute.Int("segments.selected", len(selection)),
		attribute.Int("segments.compatible", report.Projection.CompatibleCount),
		attribute.Float64("segments.budget", budget),
	)

	s.logger.DebugContext(ctx, "projection computed",
		"operation", "ComputeProjection",
		"outcome", "success",
		"selected", len(selection),
		"compatible", report.Projection.CompatibleCount,
		"budget", budget,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &ComputeProjectionResponse{
		Report:     report,
		UnknownIDs: s.unknownIDs(selection),
	}, nil
}

// GroupByCategory groups the compatible selected segments by category.
func (s *SegmentService) GroupByCategory(ctx context.Context, req *GroupByCategoryRequest) (*GroupByCategoryResponse, error) {
	if req == nil {
		req = &GroupByCategoryRequest{}
	}
	resolved := segments.NewSelection(req.SegmentIDs...).Resolve(s.catalog.Segments())
	return &GroupByCategoryResponse{Categories: segments.GroupByCategory(resolved)}, nil
}

// CategorizeLimitation classifies a single limitation text.
func (s *SegmentService) CategorizeLimitation(ctx context.Context, req *CategorizeLimitationRequest) (*CategorizeLimitationResponse, error) {
	if req == nil {
		req = &CategorizeLimitationRequest{}
	}
	return &CategorizeLimitationResponse{Category: s.engine.Categorizer().Categorize(req.Text)}, nil
}

// AnalyzeLimitations analyzes the technical limitations of the whole catalog.
func (s *SegmentService) AnalyzeLimitations(ctx context.Context, req *AnalyzeLimitationsRequest) (*AnalyzeLimitationsResponse, error) {
	categorizer := s.engine.Categorizer()
	return &AnalyzeLimitationsResponse{
		Analysis:    categorizer.Analyze(s.catalog.Segments()),
		Definitions: categorizer.Categories(),
	}, nil
}

// Summarize returns the headline counts of the filtered catalog view and
// the selection.
func (s *SegmentService) Summarize(ctx context.Context, req *SummarizeRequest) (*SummarizeResponse, error) {
	if req == nil {
		req = &SummarizeRequest{}
	}
	f := parseFilter(req.Search, req.Category, req.Compatibility, req.MinMatchRate, req.MaxCPM)
	return &SummarizeResponse{
		Publisher: s.publisher,
		Summary:   segments.Summarize(s.catalog.Segments(), f, segments.NewSelection(req.Selected...)),
	}, nil
}

// parseFilter builds a fail-open filter from request fields.
func parseFilter(search, category, compatibility string, minMatchRate, maxCPM float64) segments.Filter {
	f := segments.ParseFilter(search, category, compatibility)
	f.MinMatchRate = minMatchRate
	f.MaxCPM = maxCPM
	return f
}

// unknownIDs returns the selected ids missing from the catalog, never nil.
func (s *SegmentService) unknownIDs(selection segments.Selection) []string {
	unknown := make([]string, 0)
	for _, id := range selection {
		if _, ok := s.catalog.Lookup(id); !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
