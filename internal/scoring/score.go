// Package scoring scores catalog tools against user tag sets and ranks the results.
package scoring

import (
	"strings"

	"github.com/jonathan/tool-recommender/internal/types"
)

// Weights for scoring components
const (
	exactMatchWeight   = 10.0
	partialMatchWeight = 5.0

	freePricingBonus     = 15.0
	freemiumPricingBonus = 10.0
	beginnerCurveBonus   = 15.0
	advancedCurveBonus   = 10.0
	apiBonus             = 15.0

	maxScore = 100.0
)

// Result holds the outcome of scoring a single tool.
type Result struct {
	Score       float64
	MatchedTags []string
}

// Score evaluates one tool against a user tag set. Matching is
// case-insensitive and independent of tag order: two permutations of the
// same tag set always produce the same score. The returned score is
// clamped to [0, 100].
func Score(tool *types.Tool, userTags []string) Result {
	userSet := normalizeTagSet(userTags)
	if len(userSet) == 0 {
		return Result{MatchedTags: []string{}}
	}

	surface := tool.TagSurface()
	score := 0.0
	matchedSet := make(map[string]bool, len(surface))
	matched := make([]string, 0, len(surface))

	// Exact-match pass
	for _, toolTag := range surface {
		if userSet[toolTag] {
			matchedSet[toolTag] = true
			matched = append(matched, toolTag)
			score += exactMatchWeight
		}
	}

	// Partial-match pass: substring in either direction, skipping tags the
	// exact pass already captured so nothing is double-counted.
	for _, toolTag := range surface {
		if matchedSet[toolTag] {
			continue
		}
		for userTag := range userSet {
			if strings.Contains(toolTag, userTag) || strings.Contains(userTag, toolTag) {
				matchedSet[toolTag] = true
				matched = append(matched, toolTag)
				score += partialMatchWeight
				break
			}
		}
	}

	// Fixed bonuses for sentinel tags matching tool attributes
	switch tool.Pricing.Model {
	case types.PricingFree:
		if userSet["free"] {
			score += freePricingBonus
		}
	case types.PricingFreemium:
		if userSet["freemium"] {
			score += freemiumPricingBonus
		}
	}
	if userSet["beginner"] && tool.LearningCurve == types.CurveLow {
		score += beginnerCurveBonus
	}
	if userSet["advanced"] && tool.LearningCurve == types.CurveHigh {
		score += advancedCurveBonus
	}
	if (userSet["api"] || userSet["developer"]) && tool.HasAPI {
		score += apiBonus
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	return Result{Score: score, MatchedTags: matched}
}

// normalizeTagSet lowercases and trims user tags into a set, dropping empties.
func normalizeTagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			set[tag] = true
		}
	}
	return set
}
