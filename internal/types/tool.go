// Package types defines the domain types shared across the tool recommender.
package types

import "strings"

// PricingModel describes how a tool charges its users.
type PricingModel string

// Supported pricing models.
const (
	PricingFree     PricingModel = "free"
	PricingFreemium PricingModel = "freemium"
	PricingPaid     PricingModel = "paid"
)

// LearningCurve describes how hard a tool is to pick up.
type LearningCurve string

// Supported learning curve levels.
const (
	CurveLow    LearningCurve = "low"
	CurveMedium LearningCurve = "medium"
	CurveHigh   LearningCurve = "high"
)

// Pricing is a tool's pricing descriptor.
type Pricing struct {
	Model         PricingModel `json:"model"`
	StartingPrice string       `json:"starting_price,omitempty"`
}

// Tool is a published catalog record. The catalog is owned by the tool
// service; the recommender reads these records and never mutates them.
type Tool struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Categories    []string      `json:"categories"`
	Problems      []string      `json:"problems"`
	UseCases      []string      `json:"use_cases"`
	BestFor       []string      `json:"best_for"`
	NotGoodFor    []string      `json:"not_good_for"`
	Pricing       Pricing       `json:"pricing"`
	LearningCurve LearningCurve `json:"learning_curve"`
	HasAPI        bool          `json:"has_api"`
	Sponsored     bool          `json:"sponsored"`
	AffiliateURL  string        `json:"affiliate_url,omitempty"`
}

// TagSurface returns the tool's combined tag surface: the lowercased,
// deduplicated union of its category, problem, use-case and best-for lists.
// Order follows field order so downstream output stays deterministic.
func (t *Tool) TagSurface() []string {
	seen := make(map[string]bool)
	surface := make([]string, 0, len(t.Categories)+len(t.Problems)+len(t.UseCases)+len(t.BestFor))
	for _, list := range [][]string{t.Categories, t.Problems, t.UseCases, t.BestFor} {
		for _, tag := range list {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			surface = append(surface, tag)
		}
	}
	return surface
}
