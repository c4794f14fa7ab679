package catalog

import "github.com/solatis/segmentvet/internal/types"

var allDevices = types.DeviceCompatibility{Desktop: true, Mobile: true, Tablet: true, CTV: true}

var displayDevices = types.DeviceCompatibility{Desktop: true, Mobile: true, Tablet: true}

// builtinSegments is the reference catalog of Amazon DSP segments evaluated
// against Kargo inventory.
var builtinSegments = []types.Segment{
	// Retail graph
	{
		ID:                  "retail-electronics-buyers",
		Name:                "Consumer Electronics Buyers",
		Description:         "Shoppers who purchased consumer electronics on Amazon in the last 30 days",
		Category:            types.CategoryRetailGraph,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{65, 80},
		EstimatedCPM:        8.5,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceAmazonFirstParty,
		MinimumAudienceSize: 4_500_000,
		DeviceCompatibility: allDevices,
		SetupTime:           1,
		AdditionalCosts:     15,
		ViewabilityRate:     78,
	},
	{
		ID:                   "retail-home-kitchen",
		Name:                 "Home & Kitchen Shoppers",
		Description:          "Frequent purchasers of cookware, small appliances and home decor",
		Category:             types.CategoryRetailGraph,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{60, 75},
		EstimatedCPM:         7.25,
		TechnicalLimitations: []string{"Frequency capping managed in DSP only"},
		ActivationPath:       types.ActivationDirect,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  6_200_000,
		DeviceCompatibility:  allDevices,
		SetupTime:            1,
		AdditionalCosts:      12,
		ViewabilityRate:      76,
	},
	{
		ID:                  "retail-beauty-personal-care",
		Name:                "Beauty & Personal Care Shoppers",
		Description:         "Repeat buyers of skincare, cosmetics and grooming products",
		Category:            types.CategoryRetailGraph,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{55, 72},
		EstimatedCPM:        9,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceAmazonFirstParty,
		MinimumAudienceSize: 3_800_000,
		DeviceCompatibility: displayDevices,
		SetupTime:           1,
		AdditionalCosts:     15,
		ViewabilityRate:     80,
	},
	{
		ID:                   "retail-grocery-subscribers",
		Name:                 "Grocery Repeat Purchasers",
		Description:          "Households buying groceries and household essentials on a recurring schedule",
		Category:             types.CategoryRetailGraph,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{50, 68},
		EstimatedCPM:         6.75,
		TechnicalLimitations: []string{"Minimum campaign spend of $25,000 required"},
		ActivationPath:       types.ActivationProgrammatic,
		DataSource:           types.DataSourceHybrid,
		MinimumAudienceSize:  5_100_000,
		DeviceCompatibility:  allDevices,
		SetupTime:            2,
		AdditionalCosts:      10,
		ViewabilityRate:      74,
	},

	// In-market
	{
		ID:                   "in-market-auto-intenders",
		Name:                 "Auto Intenders",
		Description:          "Shoppers researching vehicles, auto parts and accessories",
		Category:             types.CategoryInMarket,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{45, 62},
		EstimatedCPM:         12.5,
		TechnicalLimitations: []string{"Conversion attribution requires pixel implementation"},
		ActivationPath:       types.ActivationProgrammatic,
		DataSource:           types.DataSourceHybrid,
		MinimumAudienceSize:  1_900_000,
		DeviceCompatibility:  allDevices,
		SetupTime:            2,
		AdditionalCosts:      20,
		ViewabilityRate:      82,
	},
	{
		ID:                  "in-market-travel",
		Name:                "Travel Planners",
		Description:         "Shoppers buying luggage, travel guides and travel accessories",
		Category:            types.CategoryInMarket,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{48, 64},
		EstimatedCPM:        10.5,
		ActivationPath:      types.ActivationProgrammatic,
		DataSource:          types.DataSourceThirdParty,
		MinimumAudienceSize: 2_400_000,
		DeviceCompatibility: displayDevices,
		SetupTime:           1,
		AdditionalCosts:     18,
		ViewabilityRate:     79,
	},
	{
		ID:                  "in-market-home-improvement",
		Name:                "Home Improvement Projects",
		Description:         "Shoppers browsing tools, hardware and renovation supplies",
		Category:            types.CategoryInMarket,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{52, 66},
		EstimatedCPM:        9.75,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceAmazonFirstParty,
		MinimumAudienceSize: 2_900_000,
		DeviceCompatibility: allDevices,
		SetupTime:           1,
		AdditionalCosts:     15,
		ViewabilityRate:     77,
		GeoRestrictions:     []string{"US"},
	},
	{
		ID:                   "in-market-financial-services",
		Name:                 "Financial Services Seekers",
		Description:          "Shoppers comparing credit cards, insurance and personal finance products",
		Category:             types.CategoryInMarket,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{35, 50},
		EstimatedCPM:         14,
		TechnicalLimitations: []string{"Advertiser approval and category verification required"},
		ActivationPath:       types.ActivationProgrammatic,
		DataSource:           types.DataSourceThirdParty,
		MinimumAudienceSize:  1_200_000,
		DeviceCompatibility:  displayDevices,
		SetupTime:            3,
		AdditionalCosts:      25,
		ViewabilityRate:      81,
		GeoRestrictions:      []string{"US"},
	},

	// Lifestyle
	{
		ID:                  "lifestyle-fitness-enthusiasts",
		Name:                "Fitness Enthusiasts",
		Description:         "Regular buyers of workout gear, supplements and fitness trackers",
		Category:            types.CategoryLifestyle,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{55, 70},
		EstimatedCPM:        7.5,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceThirdParty,
		MinimumAudienceSize: 3_300_000,
		DeviceCompatibility: allDevices,
		SetupTime:           1,
		AdditionalCosts:     10,
		ViewabilityRate:     75,
	},
	{
		ID:                  "lifestyle-pet-owners",
		Name:                "Pet Owners",
		Description:         "Households purchasing pet food, toys and supplies",
		Category:            types.CategoryLifestyle,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{60, 74},
		EstimatedCPM:        6.5,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceAmazonFirstParty,
		MinimumAudienceSize: 5_600_000,
		DeviceCompatibility: allDevices,
		SetupTime:           1,
		AdditionalCosts:     8,
		ViewabilityRate:     73,
	},
	{
		ID:                   "lifestyle-outdoor-adventurers",
		Name:                 "Outdoor Adventurers",
		Description:          "Buyers of camping, hiking and outdoor recreation equipment",
		Category:             types.CategoryLifestyle,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{45, 60},
		EstimatedCPM:         8,
		TechnicalLimitations: []string{"Seasonal measurement windows apply"},
		ActivationPath:       types.ActivationProgrammatic,
		DataSource:           types.DataSourceHybrid,
		MinimumAudienceSize:  1_700_000,
		DeviceCompatibility:  displayDevices,
		SetupTime:            2,
		AdditionalCosts:      12,
		ViewabilityRate:      72,
	},
	{
		ID:                  "lifestyle-gamers",
		Name:                "Gamers",
		Description:         "Shoppers purchasing consoles, games and gaming accessories",
		Category:            types.CategoryLifestyle,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{58, 72},
		EstimatedCPM:        7,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceThirdParty,
		MinimumAudienceSize: 2_800_000,
		DeviceCompatibility: allDevices,
		SetupTime:           1,
		AdditionalCosts:     10,
		ViewabilityRate:     70,
	},

	// Demographic
	{
		ID:                  "demo-new-parents",
		Name:                "New Parents",
		Description:         "Households buying baby registry items, diapers and nursery products",
		Category:            types.CategoryDemographic,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{50, 65},
		EstimatedCPM:        9.5,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceHybrid,
		MinimumAudienceSize: 1_500_000,
		DeviceCompatibility: allDevices,
		SetupTime:           1,
		AdditionalCosts:     15,
		ViewabilityRate:     80,
	},
	{
		ID:                  "demo-college-students",
		Name:                "College Students",
		Description:         "Shoppers buying textbooks, dorm essentials and student electronics",
		Category:            types.CategoryDemographic,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{40, 55},
		EstimatedCPM:        6,
		ActivationPath:      types.ActivationProgrammatic,
		DataSource:          types.DataSourceThirdParty,
		MinimumAudienceSize: 2_100_000,
		DeviceCompatibility: types.DeviceCompatibility{Mobile: true, Tablet: true},
		SetupTime:           1,
		AdditionalCosts:     8,
		ViewabilityRate:     68,
	},
	{
		ID:                   "demo-affluent-households",
		Name:                 "Affluent Households",
		Description:          "Households with high purchase value across premium categories",
		Category:             types.CategoryDemographic,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{38, 52},
		EstimatedCPM:         15,
		TechnicalLimitations: []string{"Premium inventory tier only"},
		ActivationPath:       types.ActivationProgrammatic,
		DataSource:           types.DataSourceHybrid,
		MinimumAudienceSize:  900_000,
		DeviceCompatibility:  allDevices,
		SetupTime:            2,
		AdditionalCosts:      30,
		ViewabilityRate:      84,
	},

	// Custom
	{
		ID:                   "custom-lookalike",
		Name:                 "Advertiser Lookalike",
		Description:          "Modeled audience built from an advertiser's first-party customer list",
		Category:             types.CategoryCustom,
		KargoCompatible:      true,
		MatchRateRange:       types.MatchRateRange{30, 50},
		EstimatedCPM:         11,
		TechnicalLimitations: []string{"Advertiser data onboarding required before activation"},
		ActivationPath:       types.ActivationProgrammatic,
		DataSource:           types.DataSourceHybrid,
		MinimumAudienceSize:  500_000,
		DeviceCompatibility:  allDevices,
		SetupTime:            3,
		AdditionalCosts:      25,
		ViewabilityRate:      78,
	},
	{
		ID:                  "custom-retargeting",
		Name:                "Product Page Retargeting",
		Description:         "Shoppers who viewed an advertiser's product detail pages without purchasing",
		Category:            types.CategoryCustom,
		KargoCompatible:     true,
		MatchRateRange:      types.MatchRateRange{42, 58},
		EstimatedCPM:        10,
		ActivationPath:      types.ActivationDirect,
		DataSource:          types.DataSourceAmazonFirstParty,
		MinimumAudienceSize: 400_000,
		DeviceCompatibility: displayDevices,
		SetupTime:           2,
		AdditionalCosts:     20,
		ViewabilityRate:     79,
	},

	// Restricted to Amazon owned and operated inventory
	{
		ID:                   "prime-video-viewers",
		Name:                 "Prime Video Viewers",
		Description:          "Households streaming Prime Video content weekly",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         28,
		TechnicalLimitations: []string{"Available only on Amazon O&O inventory", "Streaming data protected under Prime ecosystem terms"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  12_000_000,
		DeviceCompatibility:  types.DeviceCompatibility{CTV: true},
	},
	{
		ID:                   "prime-membership-status",
		Name:                 "Prime Members",
		Description:          "Customers with an active Prime membership",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         18,
		TechnicalLimitations: []string{"Membership status cannot leave the Amazon platform"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  40_000_000,
		DeviceCompatibility:  allDevices,
	},
	{
		ID:                   "alexa-voice-shoppers",
		Name:                 "Alexa Voice Shoppers",
		Description:          "Customers placing orders through Alexa voice assistants",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         22,
		TechnicalLimitations: []string{"Voice interaction data privacy restrictions"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  8_000_000,
		DeviceCompatibility:  types.DeviceCompatibility{},
	},
	{
		ID:                   "amazon-device-owners",
		Name:                 "Amazon Device Owners",
		Description:          "Owners of Echo, Kindle and Fire TV devices",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         20,
		TechnicalLimitations: []string{"Device data not licensed for third-party inventory"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  25_000_000,
		DeviceCompatibility:  allDevices,
	},
	{
		ID:                   "fire-tv-usage-patterns",
		Name:                 "Fire TV Usage Patterns",
		Description:          "Viewing behavior captured on Fire TV devices",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         24,
		TechnicalLimitations: []string{"Restricted to Amazon O&O inventory"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  15_000_000,
		DeviceCompatibility:  types.DeviceCompatibility{CTV: true},
	},
	{
		ID:                   "amazon-business-buyers",
		Name:                 "Amazon Business Buyers",
		Description:          "Procurement teams purchasing through Amazon Business accounts",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         26,
		TechnicalLimitations: []string{"B2B data kept separate from the consumer advertising platform"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  3_000_000,
		DeviceCompatibility:  displayDevices,
		GeoRestrictions:      []string{"US", "UK", "DE"},
	},
	{
		ID:                   "subscribe-save-households",
		Name:                 "Subscribe & Save Households",
		Description:          "Households with active recurring delivery subscriptions",
		Category:             types.CategoryRestricted,
		KargoCompatible:      false,
		MatchRateRange:       types.MatchRateRange{0, 0},
		EstimatedCPM:         16,
		TechnicalLimitations: []string{"Subscription data licensing excludes off-platform use"},
		ActivationPath:       types.ActivationUnavailable,
		DataSource:           types.DataSourceAmazonFirstParty,
		MinimumAudienceSize:  9_000_000,
		DeviceCompatibility:  allDevices,
	},
}

// Builtin returns the reference catalog.
// Panics if the reference data violates a catalog invariant.
func Builtin() *Catalog {
	c, err := New(builtinSegments)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
