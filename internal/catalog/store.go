package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	sqltypes "github.com/jmoiron/sqlx/types"

	"github.com/solatis/segmentvet/internal/core/db"
	"github.com/solatis/segmentvet/internal/types"
)

// Store persists the catalog in the SQL segments table.
// Rows keep catalog order through the position column.
type Store struct {
	queries *db.Queries
}

// NewStore creates a store over the named catalog queries.
func NewStore(queries *db.Queries) *Store {
	return &Store{queries: queries}
}

// segmentRow is the flattened table representation of a segment.
type segmentRow struct {
	ID                   string            `db:"id"`
	Name                 string            `db:"name"`
	Description          string            `db:"description"`
	Category             string            `db:"category"`
	KargoCompatible      bool              `db:"kargo_compatible"`
	MatchRateMin         float64           `db:"match_rate_min"`
	MatchRateMax         float64           `db:"match_rate_max"`
	EstimatedCPM         float64           `db:"estimated_cpm"`
	TechnicalLimitations sqltypes.JSONText `db:"technical_limitations"`
	ActivationPath       string            `db:"activation_path"`
	DataSource           string            `db:"data_source"`
	MinimumAudienceSize  int64             `db:"minimum_audience_size"`
	GeoRestrictions      sqltypes.JSONText `db:"geo_restrictions"`
	DeviceDesktop        bool              `db:"device_desktop"`
	DeviceMobile         bool              `db:"device_mobile"`
	DeviceTablet         bool              `db:"device_tablet"`
	DeviceCTV            bool              `db:"device_ctv"`
	SetupTimeWeeks       int               `db:"setup_time_weeks"`
	AdditionalCosts      float64           `db:"additional_costs"`
	ViewabilityRate      float64           `db:"viewability_rate"`
}

func (r segmentRow) toSegment() (types.Segment, error) {
	var limitations, geo []string
	if err := unmarshalList(r.TechnicalLimitations, &limitations); err != nil {
		return types.Segment{}, fmt.Errorf("segment %q: technical_limitations: %w", r.ID, err)
	}
	if err := unmarshalList(r.GeoRestrictions, &geo); err != nil {
		return types.Segment{}, fmt.Errorf("segment %q: geo_restrictions: %w", r.ID, err)
	}

	return types.Segment{
		ID:                   r.ID,
		Name:                 r.Name,
		Description:          r.Description,
		Category:             types.Category(r.Category),
		KargoCompatible:      r.KargoCompatible,
		MatchRateRange:       types.MatchRateRange{r.MatchRateMin, r.MatchRateMax},
		EstimatedCPM:         r.EstimatedCPM,
		TechnicalLimitations: limitations,
		ActivationPath:       types.ActivationPath(r.ActivationPath),
		DataSource:           types.DataSource(r.DataSource),
		MinimumAudienceSize:  r.MinimumAudienceSize,
		GeoRestrictions:      geo,
		DeviceCompatibility: types.DeviceCompatibility{
			Desktop: r.DeviceDesktop,
			Mobile:  r.DeviceMobile,
			Tablet:  r.DeviceTablet,
			CTV:     r.DeviceCTV,
		},
		SetupTime:       r.SetupTimeWeeks,
		AdditionalCosts: r.AdditionalCosts,
		ViewabilityRate: r.ViewabilityRate,
	}, nil
}

func unmarshalList(text sqltypes.JSONText, dest *[]string) error {
	if len(text) == 0 {
		return nil
	}
	return text.Unmarshal(dest)
}

// marshalList encodes a string list as a JSON array, never null.
func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Load reads every stored segment in catalog order and validates the result.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	var rows []segmentRow
	if err := s.queries.Select(ctx, "list-segments", &rows); err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}

	segments := make([]types.Segment, 0, len(rows))
	for _, row := range rows {
		segment, err := row.toSegment()
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}

	c, err := New(segments)
	if err != nil {
		return nil, fmt.Errorf("stored catalog is invalid: %w", err)
	}
	return c, nil
}

// Count returns the number of stored segments.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.queries.Get(ctx, "count-segments", &count); err != nil {
		return 0, fmt.Errorf("failed to count segments: %w", err)
	}
	return count, nil
}

// Replace swaps the stored catalog for c in a single transaction.
func (s *Store) Replace(ctx context.Context, c *Catalog) error {
	return s.queries.InTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.Exec(ctx, "delete-segments"); err != nil {
			return fmt.Errorf("failed to clear segments: %w", err)
		}

		for i, segment := range c.segments {
			limitations, err := marshalList(segment.TechnicalLimitations)
			if err != nil {
				return fmt.Errorf("segment %q: %w", segment.ID, err)
			}
			geo, err := marshalList(segment.GeoRestrictions)
			if err != nil {
				return fmt.Errorf("segment %q: %w", segment.ID, err)
			}

			_, err = tx.Exec(ctx, "insert-segment",
				i,
				segment.ID,
				segment.Name,
				segment.Description,
				string(segment.Category),
				segment.KargoCompatible,
				segment.MatchRateRange.Min(),
				segment.MatchRateRange.Max(),
				segment.EstimatedCPM,
				limitations,
				string(segment.ActivationPath),
				string(segment.DataSource),
				segment.MinimumAudienceSize,
				geo,
				segment.DeviceCompatibility.Desktop,
				segment.DeviceCompatibility.Mobile,
				segment.DeviceCompatibility.Tablet,
				segment.DeviceCompatibility.CTV,
				segment.SetupTime,
				segment.AdditionalCosts,
				segment.ViewabilityRate,
			)
			if err != nil {
				return fmt.Errorf("failed to insert segment %q: %w", segment.ID, err)
			}
		}
		return nil
	})
}
