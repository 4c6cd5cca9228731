// Package main provides the interview_coach CLI: the HTTP API server and
// one-shot evaluation tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "interview_coach",
	Short: "Mock interview coaching service",
	Long: "Interview Coach runs mock interview sessions: it asks questions, scores answers for " +
		"relevance, structure, confidence and correctness, and turns a session into analytics and an improvement plan.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file (environment variables override it)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
