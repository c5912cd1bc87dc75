// Package recommend composes scoring, ranking, explanation generation and
// caching into the recommendation pipeline.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/tool-recommender/internal/cache"
	"github.com/jonathan/tool-recommender/internal/clients"
	"github.com/jonathan/tool-recommender/internal/explain"
	"github.com/jonathan/tool-recommender/internal/scoring"
	"github.com/jonathan/tool-recommender/internal/types"
)

// Catalog lists published tools. Satisfied by clients.CatalogClient.
type Catalog interface {
	ListPublished(ctx context.Context) ([]types.Tool, error)
}

// Flows resolves a flow session's extracted tags. Satisfied by
// clients.FlowClient.
type Flows interface {
	ExtractedTags(ctx context.Context, sessionID string) ([]string, error)
}

// Options control a single recommendation request.
type Options struct {
	Limit     int
	UseAI     bool
	SkipCache bool
}

// Service is the recommendation orchestrator. All collaborators are
// injected at startup; the service holds no hidden global state.
type Service struct {
	catalog   Catalog
	flows     Flows
	store     cache.Store
	explainer *explain.Generator
}

// New creates a Service with its collaborators.
func New(catalog Catalog, flows Flows, store cache.Store, explainer *explain.Generator) *Service {
	return &Service{
		catalog:   catalog,
		flows:     flows,
		store:     store,
		explainer: explainer,
	}
}

// ByTags runs the full pipeline for an explicit tag set: cache check,
// catalog fetch, score, rank, explain, cache write. An empty tag set
// short-circuits to an empty response without touching the catalog.
// SkipCache bypasses both the read and the write so session-level callers
// can cache at their own granularity.
func (s *Service) ByTags(ctx context.Context, tags []string, opts Options) (*types.RecommendationResponse, error) {
	if len(tags) == 0 {
		return emptyResponse(tags), nil
	}
	if opts.Limit <= 0 {
		opts.Limit = scoring.DefaultTopN
	}

	key := cache.TagSetKey(tags)
	if !opts.SkipCache {
		if cached, ok := cache.GetJSON[types.RecommendationResponse](ctx, s.store, key); ok {
			cached.Cached = true
			return cached, nil
		}
	}

	tools, err := s.catalog.ListPublished(ctx)
	if err != nil {
		// Best-effort feature: a broken catalog degrades to an empty,
		// cacheable result instead of failing the request.
		log.Printf("[recommend] catalog fetch failed, serving empty result: %v", err)
		tools = nil
	}

	scored := make([]types.ScoredTool, 0, len(tools))
	for i := range tools {
		result := scoring.Score(&tools[i], tags)
		if result.Score <= 0 {
			continue
		}
		scored = append(scored, types.ScoredTool{
			Tool:        &tools[i],
			Score:       result.Score,
			MatchedTags: result.MatchedTags,
		})
	}
	totalMatched := len(scored)

	ranked := scoring.Rank(scored, scoring.Options{
		ApplyDiversity:      true,
		ApplySponsoredBoost: true,
		TopN:                opts.Limit,
	})

	// Explanations are generated for the surviving top-N only.
	explanations := s.explainer.ExplainAll(ctx, ranked, tags, opts.UseAI)

	recommendations := make([]types.RankedRecommendation, 0, len(ranked))
	for i, entry := range ranked {
		recommendations = append(recommendations, types.RankedRecommendation{
			Tool:         entry.Tool,
			Score:        entry.Score,
			Rank:         i + 1,
			Explanation:  explanations[entry.Tool.ID],
			Sponsored:    entry.Tool.Sponsored,
			AffiliateURL: entry.Tool.AffiliateURL,
		})
	}

	response := &types.RecommendationResponse{
		Recommendations: recommendations,
		TotalMatched:    totalMatched,
		ExtractedTags:   tags,
		Cached:          false,
	}

	if !opts.SkipCache {
		cache.SetJSON(ctx, s.store, key, response, cache.RecommendationTTL)
	}
	return response, nil
}

// ForSession resolves a flow session's extracted tags and delegates to
// ByTags. Returns ErrSessionNotFound (wrapped) when the session is missing
// or has no tags yet; results are cached under the session key at the
// coarser session TTL, independent of the tag-set cache.
func (s *Service) ForSession(ctx context.Context, sessionID string, opts Options) (*types.RecommendationResponse, error) {
	sessionKey := cache.SessionKey(sessionID)
	if cached, ok := cache.GetJSON[types.RecommendationResponse](ctx, s.store, sessionKey); ok {
		cached.Cached = true
		return cached, nil
	}

	tags, err := s.flows.ExtractedTags(ctx, sessionID)
	if err != nil {
		if errors.Is(err, clients.ErrSessionNotFound) {
			return nil, err
		}
		// An unreachable flow store is indistinguishable from a missing
		// session; both read as "flow not completed".
		log.Printf("[recommend] session fetch failed for %s: %v", sessionID, err)
		return nil, fmt.Errorf("session %s: %w", sessionID, clients.ErrSessionNotFound)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("session %s has no extracted tags: %w", sessionID, clients.ErrSessionNotFound)
	}

	opts.SkipCache = true
	response, err := s.ByTags(ctx, tags, opts)
	if err != nil {
		return nil, err
	}

	cache.SetJSON(ctx, s.store, sessionKey, response, cache.SessionTTL)
	return response, nil
}

// ClearCache drops every recommendation cache entry, tag-set and session
// keyed alike. Used by operators after catalog updates.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.store.DelPattern(ctx, "recs:*")
}

func emptyResponse(tags []string) *types.RecommendationResponse {
	if tags == nil {
		tags = []string{}
	}
	return &types.RecommendationResponse{
		Recommendations: []types.RankedRecommendation{},
		TotalMatched:    0,
		ExtractedTags:   tags,
		Cached:          false,
	}
}
