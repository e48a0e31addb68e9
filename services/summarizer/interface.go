package summarizer

import (
	"context"

	"github.com/nijaru/podsum/llm"
)

type Service interface {
	// Summarize runs the full pipeline for a URL or bare video ID and
	// returns the generated summary text.
	Summarize(ctx context.Context, input string, opts Options) (string, error)
}

// TranscriptFetcher yields the concatenated caption text for a video.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// CompletionClient is the remote chat-completion call.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, apiKey string, req llm.ChatRequest) (*llm.ChatResponse, error)
}

type Config struct {
	// APIKey is the process-level credential, used when a request
	// carries no override.
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Options are per-request knobs. APIKey, when set, takes precedence
// over the configured credential for this call only.
type Options struct {
	APIKey string
}
