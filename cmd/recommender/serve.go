package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/tool-recommender/internal/cache"
	"github.com/jonathan/tool-recommender/internal/clients"
	"github.com/jonathan/tool-recommender/internal/config"
	"github.com/jonathan/tool-recommender/internal/explain"
	"github.com/jonathan/tool-recommender/internal/llm"
	"github.com/jonathan/tool-recommender/internal/recommend"
	"github.com/jonathan/tool-recommender/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	llmClient, err := buildLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	if llmClient != nil {
		defer llmClient.Close()
	}

	recs := recommend.New(
		clients.NewCatalogClient(cfg.ToolsServiceURL),
		clients.NewFlowClient(cfg.FlowsServiceURL),
		store,
		explain.New(llmClient),
	)

	srv := server.New(server.Config{Port: cfg.Port}, recs, store)
	return srv.Start()
}

// buildStore connects to Redis when configured, falling back to the
// in-process store so the service stays up without a cache backend.
func buildStore(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-process cache")
		return cache.NewMemoryStore(), nil
	}
	store, err := cache.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}
	return store, nil
}

// buildLLMClient returns nil when no API key is configured; the explainer
// then serves template explanations only.
func buildLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, generative explanations disabled")
		return nil, nil
	}
	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
