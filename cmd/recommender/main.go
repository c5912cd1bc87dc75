// Package main provides the entry point for the tool recommender service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recommender",
	Short: "AI tool recommendation service",
	Long:  "Scores a published tool catalog against user tag sets, ranks the results with diversity and sponsorship adjustments, and serves explained recommendations over REST.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
