package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/solatis/segmentvet/internal/types"
)

func validSegment(id string) types.Segment {
	return types.Segment{
		ID:                  id,
		Name:                "Segment " + id,
		Category:            types.CategoryLifestyle,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{40, 60},
		EstimatedCPM:        5,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceThirdParty,
		MinimumAudienceSize: 1000,
		SetupTime:           1,
		AdditionalCosts:     10,
		ViewabilityRate:     70,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *types.Segment)
		wantErr error
	}{
		{"valid", func(s *types.Segment) {}, nil},
		{"empty id", func(s *types.Segment) { s.ID = "" }, types.ErrEmptySegmentID},
		{"unknown category", func(s *types.Segment) { s.Category = "sports" }, types.ErrInvalidCategory},
		{"unknown activation path", func(s *types.Segment) { s.ActivationPath = "email" }, types.ErrInvalidActivationPath},
		{"unknown data source", func(s *types.Segment) { s.DataSource = "scraped" }, types.ErrInvalidDataSource},
		{"min above max", func(s *types.Segment) { s.MatchRateRange = types.MatchRateRange{70, 60} }, types.ErrMatchRateRange},
		{"negative min", func(s *types.Segment) { s.MatchRateRange = types.MatchRateRange{-1, 60} }, types.ErrMatchRateRange},
		{"max above 100", func(s *types.Segment) { s.MatchRateRange = types.MatchRateRange{40, 101} }, types.ErrMatchRateRange},
		{"NaN match rate", func(s *types.Segment) { s.MatchRateRange = types.MatchRateRange{math.NaN(), 60} }, types.ErrMatchRateRange},
		{"viewability above 100", func(s *types.Segment) { s.ViewabilityRate = 100.5 }, types.ErrViewabilityRange},
		{"negative viewability", func(s *types.Segment) { s.ViewabilityRate = -1 }, types.ErrViewabilityRange},
		{"negative cpm", func(s *types.Segment) { s.EstimatedCPM = -0.01 }, types.ErrNegativeValue},
		{"negative audience", func(s *types.Segment) { s.MinimumAudienceSize = -1 }, types.ErrNegativeValue},
		{"negative setup time", func(s *types.Segment) { s.SetupTime = -2 }, types.ErrNegativeValue},
		{"negative additional costs", func(s *types.Segment) { s.AdditionalCosts = -5 }, types.ErrNegativeValue},
		{"boundary values", func(s *types.Segment) {
			s.MatchRateRange = types.MatchRateRange{0, 100}
			s.ViewabilityRate = 100
			s.EstimatedCPM = 0
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSegment("seg-1")
			tt.mutate(&s)
			err := Validate([]types.Segment{validSegment("seg-0"), s})
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ErrorNamesSegment(t *testing.T) {
	s := validSegment("bad-cpm")
	s.EstimatedCPM = -1
	err := Validate([]types.Segment{s})
	if err == nil || !strings.Contains(err.Error(), `"bad-cpm"`) {
		t.Errorf("Validate() error = %v, want message naming bad-cpm", err)
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	err := Validate([]types.Segment{validSegment("a"), validSegment("b"), validSegment("a")})
	if !errors.Is(err, types.ErrDuplicateSegmentID) {
		t.Errorf("Validate() error = %v, want ErrDuplicateSegmentID", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, types.ErrEmptyCatalog) {
		t.Errorf("Validate(nil) error = %v, want ErrEmptyCatalog", err)
	}
}
