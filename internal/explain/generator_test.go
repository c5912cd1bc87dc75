package explain

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tool-recommender/internal/llm"
	"github.com/jonathan/tool-recommender/internal/types"
)

// fakeClient returns canned responses per call, in order. A response of ""
// yields an error instead. Safe for the concurrent batch path.
type fakeClient struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.responses) {
		return "", errors.New("no more responses")
	}
	resp := f.responses[f.calls]
	f.calls++
	if resp == "" {
		return "", errors.New("model unavailable")
	}
	return resp, nil
}

func (f *fakeClient) Close() error { return nil }

const validExplanationJSON = `{"whyRecommended":"Great for drafting.","bestFor":"Writers.","whenNotToUse":"Heavy data work."}`

func testTool(id string) *types.Tool {
	return &types.Tool{
		ID:      id,
		Name:    id,
		Slug:    id,
		Pricing: types.Pricing{Model: types.PricingFree},
	}
}

func TestExplain_UsesGeneratedContent(t *testing.T) {
	generator := New(&fakeClient{responses: []string{validExplanationJSON}})

	explanation := generator.Explain(context.Background(), testTool("jasper"), []string{"writing"}, []string{"writing"}, 40, true)

	assert.Equal(t, "Great for drafting.", explanation.WhyRecommended)
	assert.Equal(t, "Writers.", explanation.BestFor)
	assert.Equal(t, "Heavy data work.", explanation.WhenNotToUse)
}

func TestExplain_TemplateWhenAIDisabled(t *testing.T) {
	generator := New(&fakeClient{responses: []string{validExplanationJSON}})

	explanation := generator.Explain(context.Background(), testTool("jasper"), []string{"writing"}, []string{"writing"}, 40, false)

	// Template output, not the canned model response
	assert.NotEqual(t, "Great for drafting.", explanation.WhyRecommended)
	assert.NotEmpty(t, explanation.WhyRecommended)
}

func TestExplain_TemplateWhenNoClient(t *testing.T) {
	generator := New(nil)

	explanation := generator.Explain(context.Background(), testTool("jasper"), []string{"writing"}, []string{"writing"}, 40, true)

	assert.NotEmpty(t, explanation.WhyRecommended)
	assert.NotEmpty(t, explanation.BestFor)
	assert.NotEmpty(t, explanation.WhenNotToUse)
}

func TestExplain_FallsBackOnGenerationError(t *testing.T) {
	generator := New(&fakeClient{responses: []string{""}})

	explanation := generator.Explain(context.Background(), testTool("jasper"), []string{"writing"}, []string{"writing"}, 40, true)

	assert.NotEmpty(t, explanation.WhyRecommended)
	assert.NotEmpty(t, explanation.WhenNotToUse)
}

func TestExplain_FallsBackOnMalformedJSON(t *testing.T) {
	generator := New(&fakeClient{responses: []string{"this is not json"}})

	explanation := generator.Explain(context.Background(), testTool("jasper"), nil, nil, 40, true)

	assert.NotEmpty(t, explanation.WhyRecommended)
}

func TestExplain_FallsBackOnMissingField(t *testing.T) {
	// bestFor absent: schema validation must reject it
	generator := New(&fakeClient{responses: []string{`{"whyRecommended":"x","whenNotToUse":"y"}`}})

	explanation := generator.Explain(context.Background(), testTool("jasper"), nil, nil, 40, true)

	assert.NotEmpty(t, explanation.BestFor)
}

func TestExplain_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validExplanationJSON + "\n```"
	generator := New(&fakeClient{responses: []string{fenced}})

	explanation := generator.Explain(context.Background(), testTool("jasper"), nil, nil, 40, true)

	assert.Equal(t, "Great for drafting.", explanation.WhyRecommended)
}

func TestExplainAll_OneResultPerTool(t *testing.T) {
	generator := New(nil)
	ranked := []types.ScoredTool{
		{Tool: testTool("a"), Score: 50, MatchedTags: []string{"writing"}},
		{Tool: testTool("b"), Score: 40, MatchedTags: []string{"coding"}},
		{Tool: testTool("c"), Score: 30},
	}

	explanations := generator.ExplainAll(context.Background(), ranked, []string{"writing"}, false)

	require.Len(t, explanations, 3)
	for _, id := range []string{"a", "b", "c"} {
		explanation, ok := explanations[id]
		require.True(t, ok, "missing explanation for %s", id)
		assert.NotEmpty(t, explanation.WhyRecommended)
		assert.NotEmpty(t, explanation.BestFor)
		assert.NotEmpty(t, explanation.WhenNotToUse)
	}
}

func TestExplainAll_PartialFailureStillFillsEveryTool(t *testing.T) {
	// One of three calls fails; its tool gets a template explanation while
	// the batch still completes in full.
	client := &fakeClient{responses: []string{validExplanationJSON, "", validExplanationJSON}}
	generator := New(client)
	ranked := []types.ScoredTool{
		{Tool: testTool("a"), Score: 50},
		{Tool: testTool("b"), Score: 40},
		{Tool: testTool("c"), Score: 30},
	}

	explanations := generator.ExplainAll(context.Background(), ranked, nil, true)

	require.Len(t, explanations, 3)
	for id, explanation := range explanations {
		assert.NotEmpty(t, explanation.WhyRecommended, "tool %s", id)
		assert.NotEmpty(t, explanation.BestFor, "tool %s", id)
		assert.NotEmpty(t, explanation.WhenNotToUse, "tool %s", id)
	}
}

func TestExplainAll_EmptyInput(t *testing.T) {
	generator := New(nil)

	explanations := generator.ExplainAll(context.Background(), nil, []string{"writing"}, true)

	assert.Empty(t, explanations)
}
