package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan/tool-recommender/internal/clients"
	"github.com/jonathan/tool-recommender/internal/recommend"
	"github.com/jonathan/tool-recommender/internal/types"
)

// maxLimit caps how many recommendations a caller may request.
const maxLimit = 10

// handleRecommend serves POST /recommendations for an explicit tag list.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "tags array is required")
		return
	}

	response, err := s.recs.ByTags(r.Context(), req.Tags, recommend.Options{
		Limit: req.Limit,
		UseAI: req.UseAI,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to generate recommendations")
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleRecommendForSession serves GET /recommendations/session/{session_id}.
// A 404 means the flow has not completed yet, which is distinct from a 200
// with zero matches.
func (s *Server) handleRecommendForSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	if sessionID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	response, err := s.recs.ForSession(r.Context(), sessionID, recommend.Options{
		Limit: parseQueryInt(r, "limit", 0, maxLimit),
		UseAI: r.URL.Query().Get("useAI") == "true",
	})
	if err != nil {
		if errors.Is(err, clients.ErrSessionNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Session not found or flow not completed")
			return
		}
		s.errorResponse(w, HTTPStatus(err), "Failed to generate recommendations")
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleClearCache serves DELETE /recommendations/cache, dropping every
// recommendation entry. Operators call this after catalog updates.
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.recs.ClearCache(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear cache")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"cleared": true})
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
