// Package types provides domain models shared across segmentvet components.
//
// Segment records are reference data: they are loaded once from a catalog
// source and never mutated afterwards. Enumerations are closed string types so
// that JSON and YAML catalogs keep the same spelling as the records they
// describe.
package types

// Category groups segments by how their audience was built.
type Category string

const (
	CategoryRetailGraph Category = "retail-graph"
	CategoryInMarket    Category = "in-market"
	CategoryLifestyle   Category = "lifestyle"
	CategoryDemographic Category = "demographic"
	CategoryCustom      Category = "custom"
	CategoryRestricted  Category = "restricted"
)

// AllCategories lists every Category in display order.
var AllCategories = []Category{
	CategoryRetailGraph,
	CategoryInMarket,
	CategoryLifestyle,
	CategoryDemographic,
	CategoryCustom,
	CategoryRestricted,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryRetailGraph, CategoryInMarket, CategoryLifestyle,
		CategoryDemographic, CategoryCustom, CategoryRestricted:
		return true
	default:
		return false
	}
}

// ActivationPath describes how a segment reaches the publisher's inventory.
type ActivationPath string

const (
	ActivationDirect       ActivationPath = "direct"
	ActivationProgrammatic ActivationPath = "programmatic"
	ActivationUnavailable  ActivationPath = "unavailable"
)

// AllActivationPaths lists every ActivationPath.
var AllActivationPaths = []ActivationPath{
	ActivationDirect,
	ActivationProgrammatic,
	ActivationUnavailable,
}

// Valid reports whether p is a member of the closed activation path set.
func (p ActivationPath) Valid() bool {
	switch p {
	case ActivationDirect, ActivationProgrammatic, ActivationUnavailable:
		return true
	default:
		return false
	}
}

// DataSource identifies who owns the data behind a segment.
type DataSource string

const (
	DataSourceAmazonFirstParty DataSource = "amazon-first-party"
	DataSourceThirdParty       DataSource = "third-party"
	DataSourceHybrid           DataSource = "hybrid"
)

// AllDataSources lists every DataSource.
var AllDataSources = []DataSource{
	DataSourceAmazonFirstParty,
	DataSourceThirdParty,
	DataSourceHybrid,
}

// Valid reports whether d is a member of the closed data source set.
func (d DataSource) Valid() bool {
	switch d {
	case DataSourceAmazonFirstParty, DataSourceThirdParty, DataSourceHybrid:
		return true
	default:
		return false
	}
}

// MatchRateRange is an ordered (min, max) percentage pair.
// Serialized as a two-element array to match catalog files.
type MatchRateRange [2]float64

// Min returns the lower bound.
func (r MatchRateRange) Min() float64 { return r[0] }

// Max returns the upper bound.
func (r MatchRateRange) Max() float64 { return r[1] }

// Midpoint returns (min+max)/2.
func (r MatchRateRange) Midpoint() float64 { return (r[0] + r[1]) / 2 }

// DeviceCompatibility flags the device classes a segment can be served on.
type DeviceCompatibility struct {
	Desktop bool `json:"desktop" yaml:"desktop"`
	Mobile  bool `json:"mobile" yaml:"mobile"`
	Tablet  bool `json:"tablet" yaml:"tablet"`
	CTV     bool `json:"ctv" yaml:"ctv"`
}

// Segment is one Amazon DSP audience segment in the catalog.
type Segment struct {
	ID                   string              `json:"id" yaml:"id"`
	Name                 string              `json:"name" yaml:"name"`
	Description          string              `json:"description" yaml:"description"`
	Category             Category            `json:"category" yaml:"category"`
	KargoCompatible      bool                `json:"kargoCompatible" yaml:"kargoCompatible"`
	MatchRateRange       MatchRateRange      `json:"matchRateRange" yaml:"matchRateRange"`
	EstimatedCPM         float64             `json:"estimatedCPM" yaml:"estimatedCPM"`
	TechnicalLimitations []string            `json:"technicalLimitations" yaml:"technicalLimitations"`
	ActivationPath       ActivationPath      `json:"activationPath" yaml:"activationPath"`
	DataSource           DataSource          `json:"dataSource" yaml:"dataSource"`
	MinimumAudienceSize  int64               `json:"minimumAudienceSize" yaml:"minimumAudienceSize"`
	GeoRestrictions      []string            `json:"geoRestrictions,omitempty" yaml:"geoRestrictions,omitempty"`
	DeviceCompatibility  DeviceCompatibility `json:"deviceCompatibility" yaml:"deviceCompatibility"`
	SetupTime            int                 `json:"setupTime" yaml:"setupTime"` // weeks
	AdditionalCosts      float64             `json:"additionalCosts" yaml:"additionalCosts"` // percentage premium
	ViewabilityRate      float64             `json:"viewabilityRate" yaml:"viewabilityRate"` // percentage
}
