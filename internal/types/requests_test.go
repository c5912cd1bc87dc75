package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendRequest_Validate_Valid(t *testing.T) {
	req := &RecommendRequest{Tags: []string{"free", "coding"}, Limit: 5}

	assert.NoError(t, req.Validate())
}

func TestRecommendRequest_Validate_MissingTags(t *testing.T) {
	req := &RecommendRequest{}

	assert.Error(t, req.Validate())
}

func TestRecommendRequest_Validate_EmptyTags(t *testing.T) {
	req := &RecommendRequest{Tags: []string{}}

	assert.Error(t, req.Validate())
}

func TestRecommendRequest_Validate_BlankTagEntry(t *testing.T) {
	req := &RecommendRequest{Tags: []string{"free", ""}}

	assert.Error(t, req.Validate())
}

func TestRecommendRequest_Validate_LimitOutOfRange(t *testing.T) {
	req := &RecommendRequest{Tags: []string{"free"}, Limit: 50}

	assert.Error(t, req.Validate())
}
