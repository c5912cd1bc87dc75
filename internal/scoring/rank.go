package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/tool-recommender/internal/types"
)

// Ranking defaults
const (
	DefaultTopN = 3

	defaultDiversityPenaltyPct = 10.0
	sponsoredBoost             = 5.0
)

// Options control the ranking pipeline.
type Options struct {
	ApplyDiversity      bool
	ApplySponsoredBoost bool
	TopN                int     // zero means DefaultTopN
	DiversityPenaltyPct float64 // zero means the default of 10
}

// Rank orders scored tools and truncates to the top N. The pipeline is
// fixed: sort by score, boost sponsored tools, apply the diversity
// penalty, truncate. Ties preserve input order at every step.
func Rank(scored []types.ScoredTool, opts Options) []types.ScoredTool {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.DiversityPenaltyPct <= 0 {
		opts.DiversityPenaltyPct = defaultDiversityPenaltyPct
	}

	ranked := make([]types.ScoredTool, len(scored))
	copy(ranked, scored)
	sortByScore(ranked)

	if opts.ApplySponsoredBoost {
		for i := range ranked {
			if ranked[i].Tool.Sponsored {
				ranked[i].Score += sponsoredBoost
				if ranked[i].Score > maxScore {
					ranked[i].Score = maxScore
				}
			}
		}
		sortByScore(ranked)
	}

	if opts.ApplyDiversity {
		applyDiversityPenalty(ranked, opts.DiversityPenaltyPct)
		sortByScore(ranked)
	}

	if len(ranked) > opts.TopN {
		ranked = ranked[:opts.TopN]
	}
	return ranked
}

// applyDiversityPenalty walks the list in its current (pre-penalty) order
// and reduces each tool's score by the fraction of its categories already
// seen earlier in the walk, times penaltyPct. A single forward pass: tools
// ranked higher are never penalized by tools below them.
func applyDiversityPenalty(ranked []types.ScoredTool, penaltyPct float64) {
	seen := make(map[string]bool)
	for i := range ranked {
		categories := ranked[i].Tool.Categories
		if len(categories) > 0 {
			overlap := 0
			for _, category := range categories {
				if seen[strings.ToLower(category)] {
					overlap++
				}
			}
			if overlap > 0 {
				fraction := float64(overlap) / float64(len(categories))
				ranked[i].Score -= fraction * penaltyPct
				if ranked[i].Score < 0 {
					ranked[i].Score = 0
				}
			}
		}
		for _, category := range categories {
			seen[strings.ToLower(category)] = true
		}
	}
}

// sortByScore sorts descending by score, keeping input order for ties.
func sortByScore(scored []types.ScoredTool) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}
