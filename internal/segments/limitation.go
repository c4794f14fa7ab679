// internal/segments/limitation.go
package segments

import (
	"strings"

	"github.com/solatis/segmentvet/internal/types"
)

/*
 * Technical limitation analysis.
 *
 * LimitationCategorizer is an ordered linear classifier: a limitation text is
 * assigned to the first definition with a keyword contained in the text
 * (case-insensitive substring, no fuzzy matching), falling back to Other.
 *
 * AnalyzeLimitations groups restricted segments and compatible segments with
 * limitations under each definition. Group membership uses any keyword of the
 * definition, so one segment may appear under several categories; individual
 * limitation texts are still classified first-match-wins.
 *
 * Restriction reasons and recommendations are keyed on segment id substrings,
 * checked in order.
 */

// OtherLimitationCategory is returned when no definition matches.
const OtherLimitationCategory = "Other"

// LimitationCategory is one category definition.
type LimitationCategory struct {
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords,omitempty"`
	Description string   `json:"description"`
}

// DefaultLimitationCategories returns the reference definitions in priority order.
func DefaultLimitationCategories() []LimitationCategory {
	return []LimitationCategory{
		{
			Name:        "Data Privacy",
			Keywords:    []string{"privacy", "restriction", "protected", "voice", "device data", "membership"},
			Description: "Segments restricted due to data privacy regulations and Amazon's data protection policies",
		},
		{
			Name:        "Platform Restrictions",
			Keywords:    []string{"O&O", "Amazon", "platform", "ecosystem", "licensing"},
			Description: "Segments available only on Amazon's owned and operated inventory",
		},
		{
			Name:        "Technical Implementation",
			Keywords:    []string{"pixel", "attribution", "measurement", "frequency", "implementation"},
			Description: "Segments requiring specific technical setup or measurement considerations",
		},
		{
			Name:        "Business Requirements",
			Keywords:    []string{"premium", "minimum", "approval", "verification", "onboarding"},
			Description: "Segments with specific business or approval requirements for activation",
		},
	}
}

// otherCategory is the fallback definition.
var otherCategory = LimitationCategory{
	Name:        OtherLimitationCategory,
	Description: "Other technical considerations",
}

// LimitationCategorizer classifies limitation texts against ordered definitions.
type LimitationCategorizer struct {
	categories []LimitationCategory
	lowered    [][]string // lower-cased keywords, parallel to categories
}

// NewLimitationCategorizer creates a categorizer over defs, checked in order.
func NewLimitationCategorizer(defs []LimitationCategory) *LimitationCategorizer {
	c := &LimitationCategorizer{
		categories: make([]LimitationCategory, len(defs)),
		lowered:    make([][]string, len(defs)),
	}
	copy(c.categories, defs)
	for i, def := range defs {
		kws := make([]string, 0, len(def.Keywords))
		for _, kw := range def.Keywords {
			if kw = strings.ToLower(kw); kw != "" {
				kws = append(kws, kw)
			}
		}
		c.lowered[i] = kws
	}
	return c
}

// DefaultLimitationCategorizer creates a categorizer over the reference definitions.
func DefaultLimitationCategorizer() *LimitationCategorizer {
	return NewLimitationCategorizer(DefaultLimitationCategories())
}

// Categories returns the definitions in priority order.
func (c *LimitationCategorizer) Categories() []LimitationCategory {
	out := make([]LimitationCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Categorize returns the first definition with a keyword contained in text,
// or the Other category.
func (c *LimitationCategorizer) Categorize(text string) LimitationCategory {
	lower := strings.ToLower(text)
	for i := range c.categories {
		if containsAny(lower, c.lowered[i]) {
			return c.categories[i]
		}
	}
	return otherCategory
}

// CategorizeLimitation classifies text against the reference definitions.
func CategorizeLimitation(text string) LimitationCategory {
	return DefaultLimitationCategorizer().Categorize(text)
}

// containsAny reports whether lower contains any of keywords.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AffectedSegment is a segment listed under a limitation category.
type AffectedSegment struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Blocked     bool     `json:"blocked"` // true when not compatible at all
	Limitations []string `json:"limitations"`
}

// LimitationGroup lists the segments affected by one category.
type LimitationGroup struct {
	Category LimitationCategory `json:"category"`
	Segments []AffectedSegment  `json:"segments"`
}

// RestrictedSegment explains why a segment cannot run on the publisher's inventory.
type RestrictedSegment struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Reason         string   `json:"reason"`
	Recommendation string   `json:"recommendation"`
	Limitations    []string `json:"limitations"`
}

// LimitationAnalysis summarizes technical limitations across segments.
type LimitationAnalysis struct {
	RestrictedCount      int                 `json:"restrictedCount"`
	LimitedCount         int                 `json:"limitedCount"`
	Groups               []LimitationGroup   `json:"groups"`
	Restricted           []RestrictedSegment `json:"restricted"`
	LimitationCategories map[string]int      `json:"limitationCategories"` // first-match counts per category name
}

// Analyze groups restricted segments and compatible segments with
// limitations by category. Empty categories are omitted.
func (c *LimitationCategorizer) Analyze(segments []types.Segment) LimitationAnalysis {
	var restricted, limited []types.Segment
	for _, segment := range segments {
		switch {
		case !segment.KargoCompatible:
			restricted = append(restricted, segment)
		case len(segment.TechnicalLimitations) > 0:
			limited = append(limited, segment)
		}
	}

	analysis := LimitationAnalysis{
		RestrictedCount:      len(restricted),
		LimitedCount:         len(limited),
		Groups:               make([]LimitationGroup, 0, len(c.categories)),
		Restricted:           make([]RestrictedSegment, 0, len(restricted)),
		LimitationCategories: make(map[string]int),
	}

	relevant := append(append([]types.Segment{}, restricted...), limited...)
	for i, def := range c.categories {
		group := LimitationGroup{Category: def}
		for _, segment := range relevant {
			var matched []string
			for _, limitation := range segment.TechnicalLimitations {
				if containsAny(strings.ToLower(limitation), c.lowered[i]) {
					matched = append(matched, limitation)
				}
			}
			if len(matched) == 0 {
				continue
			}
			group.Segments = append(group.Segments, AffectedSegment{
				ID:          segment.ID,
				Name:        segment.Name,
				Blocked:     !segment.KargoCompatible,
				Limitations: matched,
			})
		}
		if len(group.Segments) > 0 {
			analysis.Groups = append(analysis.Groups, group)
		}
	}

	for _, segment := range relevant {
		for _, limitation := range segment.TechnicalLimitations {
			analysis.LimitationCategories[c.Categorize(limitation).Name]++
		}
	}

	for _, segment := range restricted {
		analysis.Restricted = append(analysis.Restricted, RestrictedSegment{
			ID:             segment.ID,
			Name:           segment.Name,
			Reason:         RestrictionReason(segment),
			Recommendation: Recommendation(segment),
			Limitations:    append([]string{}, segment.TechnicalLimitations...),
		})
	}

	return analysis
}

// AnalyzeLimitations runs Analyze with the reference definitions.
func AnalyzeLimitations(segments []types.Segment) LimitationAnalysis {
	return DefaultLimitationCategorizer().Analyze(segments)
}

// idRule maps id substrings to a text, checked in order.
type idRule struct {
	substrings []string
	text       string
}

var restrictionReasons = []idRule{
	{[]string{"prime-membership", "prime-video"}, "Prime Ecosystem Protection"},
	{[]string{"alexa", "voice"}, "Voice Data Privacy"},
	{[]string{"device", "usage-patterns"}, "Device Data Restrictions"},
	{[]string{"business"}, "B2B Platform Separation"},
}

const defaultRestrictionReason = "Data Licensing Limitations"

var recommendations = []idRule{
	{[]string{"prime-video"}, "Consider CTV advertising on Amazon DSP with Prime Video content targeting"},
	{[]string{"prime-membership"}, "Use Amazon retail behavioral segments as proxy for Prime users"},
	{[]string{"alexa"}, "Target smart home enthusiasts or tech early adopters instead"},
	{[]string{"business"}, "Use professional demographic segments or LinkedIn integration"},
}

const defaultRecommendation = "Explore similar third-party segments available on Kargo inventory"

// RestrictionReason explains why segment is unavailable on the publisher's inventory.
func RestrictionReason(segment types.Segment) string {
	return matchIDRule(segment.ID, restrictionReasons, defaultRestrictionReason)
}

// Recommendation suggests an alternative targeting approach for segment.
func Recommendation(segment types.Segment) string {
	return matchIDRule(segment.ID, recommendations, defaultRecommendation)
}

func matchIDRule(id string, rules []idRule, fallback string) string {
	for _, rule := range rules {
		for _, sub := range rule.substrings {
			if strings.Contains(id, sub) {
				return rule.text
			}
		}
	}
	return fallback
}
