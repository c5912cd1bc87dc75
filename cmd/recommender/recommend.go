package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/tool-recommender/internal/cache"
	"github.com/jonathan/tool-recommender/internal/clients"
	"github.com/jonathan/tool-recommender/internal/config"
	"github.com/jonathan/tool-recommender/internal/explain"
	"github.com/jonathan/tool-recommender/internal/recommend"
)

var (
	recommendTags  string
	recommendLimit int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score a tag list against the catalog and print the result",
	Long:  `Run the recommendation pipeline once against the configured catalog service and print the JSON response. Useful for debugging scoring changes without a running server.`,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendTags, "tags", "", "Comma-separated user tags (required)")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum recommendations to return")
	_ = recommendCmd.MarkFlagRequired("tags")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tags := splitTags(recommendTags)
	if len(tags) == 0 {
		return fmt.Errorf("at least one tag is required")
	}

	// One-shot runs use the in-process store and template explanations.
	recs := recommend.New(
		clients.NewCatalogClient(cfg.ToolsServiceURL),
		clients.NewFlowClient(cfg.FlowsServiceURL),
		cache.NewMemoryStore(),
		explain.New(nil),
	)

	response, err := recs.ByTags(cmd.Context(), tags, recommend.Options{Limit: recommendLimit})
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
