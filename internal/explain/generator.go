package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/tool-recommender/internal/llm"
	"github.com/jonathan/tool-recommender/internal/prompts"
	"github.com/jonathan/tool-recommender/internal/schemas"
	"github.com/jonathan/tool-recommender/internal/types"
)

// defaultCallTimeout bounds a single generation call so one slow tool
// cannot stall the whole batch; on expiry the template fallback is used.
const defaultCallTimeout = 12 * time.Second

// Generator produces explanations for ranked tools. A nil client disables
// the generative path entirely; the template strategy is always available.
type Generator struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a Generator. client may be nil when no generative capability
// is configured.
func New(client llm.Client) *Generator {
	return &Generator{client: client, timeout: defaultCallTimeout}
}

// Explain produces the explanation for one tool. Generation failures of
// any kind degrade to the template strategy and are never returned.
func (g *Generator) Explain(ctx context.Context, tool *types.Tool, userTags, matchedTags []string, score float64, useAI bool) types.Explanation {
	if !useAI || g.client == nil {
		return TemplateExplanation(tool, matchedTags)
	}

	explanation, err := g.generate(ctx, tool, userTags, matchedTags, score)
	if err != nil {
		log.Printf("[explain] generation failed for %s, using template: %v", tool.Slug, err)
		return TemplateExplanation(tool, matchedTags)
	}
	return *explanation
}

// ExplainAll generates explanations for every scored tool concurrently and
// waits for the full batch. The result always contains exactly one
// well-formed explanation per input tool, keyed by tool ID.
func (g *Generator) ExplainAll(ctx context.Context, ranked []types.ScoredTool, userTags []string, useAI bool) map[string]types.Explanation {
	results := make([]types.Explanation, len(ranked))

	grp, gctx := errgroup.WithContext(ctx)
	for i := range ranked {
		grp.Go(func() error {
			entry := ranked[i]
			callCtx, cancel := context.WithTimeout(gctx, g.timeout)
			defer cancel()
			results[i] = g.Explain(callCtx, entry.Tool, userTags, entry.MatchedTags, entry.Score, useAI)
			return nil
		})
	}
	// Branches never return errors; failures already fell back to templates.
	_ = grp.Wait()

	explanations := make(map[string]types.Explanation, len(ranked))
	for i, entry := range ranked {
		explanations[entry.Tool.ID] = results[i]
	}
	return explanations
}

// generate asks the model for the three explanation fields as strict JSON.
func (g *Generator) generate(ctx context.Context, tool *types.Tool, userTags, matchedTags []string, score float64) (*types.Explanation, error) {
	prompt := buildExplainPrompt(tool, userTags, matchedTags, score)

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateExplanation(raw); err != nil {
		return nil, fmt.Errorf("generated explanation rejected: %w", err)
	}

	var explanation types.Explanation
	if err := json.Unmarshal([]byte(raw), &explanation); err != nil {
		return nil, fmt.Errorf("failed to parse generated explanation: %w (content: %s)", err, raw)
	}
	return &explanation, nil
}

// buildExplainPrompt fills the embedded prompt template with tool context.
func buildExplainPrompt(tool *types.Tool, userTags, matchedTags []string, score float64) string {
	template := prompts.MustGet("recommendations.json", "explain-tool")
	return prompts.Format(template, map[string]string{
		"ToolName":        tool.Name,
		"ToolDescription": tool.Description,
		"Pricing":         pricingLine(tool),
		"LearningCurve":   string(tool.LearningCurve),
		"HasAPI":          strconv.FormatBool(tool.HasAPI),
		"BestFor":         orNone(strings.Join(tool.BestFor, ", ")),
		"NotGoodFor":      orNone(strings.Join(tool.NotGoodFor, ", ")),
		"UserTags":        orNone(strings.Join(userTags, ", ")),
		"MatchedTags":     orNone(strings.Join(matchedTags, ", ")),
		"Score":           strconv.FormatFloat(score, 'f', -1, 64),
	})
}

func pricingLine(tool *types.Tool) string {
	if tool.Pricing.StartingPrice != "" {
		return fmt.Sprintf("%s (from %s)", tool.Pricing.Model, tool.Pricing.StartingPrice)
	}
	return string(tool.Pricing.Model)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
