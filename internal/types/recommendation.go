package types

// ScoredTool pairs a catalog tool with its match score against a user tag
// set. It is produced by the scorer and consumed by the ranker; it never
// leaves the pipeline.
type ScoredTool struct {
	Tool        *Tool
	Score       float64
	MatchedTags []string
}

// Explanation is the three-part natural-language rationale attached to a
// recommendation. All fields are always populated; the template fallback
// guarantees no empty field even when generation fails.
type Explanation struct {
	WhyRecommended string `json:"whyRecommended"`
	BestFor        string `json:"bestFor"`
	WhenNotToUse   string `json:"whenNotToUse"`
}

// RankedRecommendation is a single entry in the ranked list returned to
// callers. Immutable once constructed.
type RankedRecommendation struct {
	Tool         *Tool       `json:"tool"`
	Score        float64     `json:"score"`
	Rank         int         `json:"rank"`
	Explanation  Explanation `json:"explanation"`
	Sponsored    bool        `json:"sponsored"`
	AffiliateURL string      `json:"affiliateUrl,omitempty"`
}

// RecommendationResponse is the full payload returned by the recommendation
// endpoints. TotalMatched counts every catalog tool that scored above zero,
// not just the entries that survived ranking.
type RecommendationResponse struct {
	Recommendations []RankedRecommendation `json:"recommendations"`
	TotalMatched    int                    `json:"totalMatched"`
	ExtractedTags   []string               `json:"extractedTags"`
	Cached          bool                   `json:"cached"`
}
