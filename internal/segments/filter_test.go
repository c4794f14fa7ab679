// internal/segments/filter_test.go
package segments

import (
	"reflect"
	"testing"

	"github.com/solatis/segmentvet/internal/types"
)

func TestFilterSegments(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "match all returns catalog",
			filter: MatchAll(),
			want:   segmentIDs(catalog),
		},
		{
			name:   "zero filter returns catalog",
			filter: Filter{},
			want:   segmentIDs(catalog),
		},
		{
			name:   "search matches name case-insensitively",
			filter: Filter{SearchTerm: "FITNESS"},
			want:   []string{"lifestyle-fitness"},
		},
		{
			name:   "search matches description",
			filter: Filter{SearchTerm: "voice assistants"},
			want:   []string{"alexa-voice-shoppers"},
		},
		{
			name:   "category filter",
			filter: Filter{Category: OnlyCategory(types.CategoryRestricted)},
			want:   []string{"prime-video-viewers", "alexa-voice-shoppers"},
		},
		{
			name:   "compatible only",
			filter: Filter{Compatibility: CompatibilityCompatible},
			want:   []string{"retail-electronics", "in-market-autos", "lifestyle-fitness", "demo-parents"},
		},
		{
			name:   "incompatible only",
			filter: Filter{Compatibility: CompatibilityIncompatible},
			want:   []string{"prime-video-viewers", "alexa-voice-shoppers"},
		},
		{
			name:   "predicates are ANDed",
			filter: Filter{SearchTerm: "shoppers", Compatibility: CompatibilityCompatible},
			want:   []string{"retail-electronics"},
		},
		{
			name:   "min match rate uses midpoint",
			filter: Filter{MinMatchRate: 60},
			want:   []string{"retail-electronics", "lifestyle-fitness"},
		},
		{
			name:   "max cpm",
			filter: Filter{MaxCPM: 8},
			want:   []string{"retail-electronics", "lifestyle-fitness"},
		},
		{
			name:   "no match returns empty",
			filter: Filter{SearchTerm: "zzz-nothing"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentIDs(FilterSegments(catalog, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterSegments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFilter_FailOpen(t *testing.T) {
	tests := []struct {
		name              string
		category          string
		compatibility     string
		wantCategory      string
		wantCompatibility Compatibility
	}{
		{"all", "all", "all", "all", CompatibilityAll},
		{"empty", "", "", "all", CompatibilityAll},
		{"known values", "in-market", "compatible", "in-market", CompatibilityCompatible},
		{"mixed case", " Lifestyle ", "INCOMPATIBLE", "lifestyle", CompatibilityIncompatible},
		{"unknown values", "sports", "maybe", "all", CompatibilityAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseFilter("", tt.category, tt.compatibility)
			if f.Category.String() != tt.wantCategory {
				t.Errorf("Category = %q, want %q", f.Category.String(), tt.wantCategory)
			}
			if f.Compatibility != tt.wantCompatibility {
				t.Errorf("Compatibility = %q, want %q", f.Compatibility, tt.wantCompatibility)
			}
		})
	}
}

func TestFilterSegments_UnknownEnumsMatchEverything(t *testing.T) {
	catalog := testCatalog()
	f := Filter{
		Category:      CategoryFilter{Category: types.Category("bogus")},
		Compatibility: Compatibility("bogus"),
	}
	got := FilterSegments(catalog, f)
	if len(got) != len(catalog) {
		t.Errorf("len(FilterSegments()) = %d, want %d", len(got), len(catalog))
	}
}

func TestPartition(t *testing.T) {
	catalog := testCatalog()
	in, out := Partition(catalog, Filter{Compatibility: CompatibilityCompatible})
	if len(in) != 4 || len(out) != 2 {
		t.Fatalf("Partition() sizes = %d/%d, want 4/2", len(in), len(out))
	}
	for _, s := range out {
		if s.KargoCompatible {
			t.Errorf("segment %s filtered out but compatible", s.ID)
		}
	}
}

func TestFilterSegments_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	before := testCatalog()
	_ = FilterSegments(catalog, Filter{SearchTerm: "shoppers"})
	if !reflect.DeepEqual(catalog, before) {
		t.Error("FilterSegments() mutated the catalog")
	}
}
