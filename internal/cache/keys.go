// Package cache provides the TTL key-value store backing the recommender
// and the key derivation rules shared with other services.
package cache

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// Fixed TTLs per data kind.
const (
	RecommendationTTL = 3600 * time.Second // tag-set keyed recommendation results
	SessionTTL        = 1800 * time.Second // session-level recommendation cache
	CatalogTTL        = 300 * time.Second  // catalog list caches
)

// TagSetKey derives the cache key for an unordered user tag set. Tags are
// lowercased, sorted lexicographically and joined with ':'; whitespace
// becomes '-'. Permutations of the same tag set yield the same key, which
// other services rely on.
func TagSetKey(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(tag)))
	}
	sort.Strings(normalized)
	joined := strings.Join(normalized, ":")
	joined = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, joined)
	return "recs:" + joined
}

// SessionKey returns the session-scoped recommendation cache key.
func SessionKey(sessionID string) string {
	return "recs:session:" + sessionID
}

// CompareKey derives a key for a set of compared identifiers under a
// domain prefix. Identifiers are sorted so the key is order-independent.
func CompareKey(domain string, ids ...string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return domain + ":" + strings.Join(sorted, ":")
}
