package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nijaru/podsum/config"
	"github.com/nijaru/podsum/llm"
	"github.com/nijaru/podsum/services/summarizer"
	"github.com/nijaru/podsum/youtube"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "podsum <url>",
	Short: "Summarize YouTube podcasts from their transcripts",
	Long: `podsum fetches the transcript of a YouTube video and generates a
structured summary using an OpenRouter completion model.

Requires the OPENROUTER_API_KEY environment variable.`,
	Example: `  podsum "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
  podsum dQw4w9WgXcQ`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSummarize,
}

func init() {
	// Load .env if present, silently ignore if missing.
	godotenv.Load()

	// Keep stdout clean for the summary itself.
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.AddCommand(serveCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	podcastURL := args[0]
	fmt.Printf("Processing: %s\n", podcastURL)

	svc := newSummarizerService(cfg)

	summary, err := svc.Summarize(cmd.Context(), podcastURL, summarizer.Options{})
	if err != nil {
		// Pipeline failures are reported but exit 0; only a missing
		// credential is fatal.
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("PODCAST SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Println(summary)

	return nil
}

func newSummarizerService(cfg *config.Config) summarizer.Service {
	transcripts := youtube.NewClient()
	completions := llm.NewClient(
		llm.WithBaseURL(cfg.OpenRouter.BaseURL),
		llm.WithTimeout(cfg.OpenRouter.Timeout),
	)

	return summarizer.NewService(transcripts, completions, summarizer.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		Model:       cfg.OpenRouter.Model,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
