package summarizer

import (
	"context"

	"github.com/nijaru/podsum/errors"
	"github.com/nijaru/podsum/llm"
	"github.com/nijaru/podsum/youtube"
	"github.com/sirupsen/logrus"
)

type service struct {
	transcripts TranscriptFetcher
	completions CompletionClient
	config      Config
	logger      *logrus.Logger
}

// NewService creates the summarization pipeline service.
func NewService(
	transcripts TranscriptFetcher,
	completions CompletionClient,
	config Config,
) Service {
	return &service{
		transcripts: transcripts,
		completions: completions,
		config:      config,
		logger:      logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, input string, opts Options) (string, error) {
	const op = "SummarizerService.Summarize"
	logger := s.logger.WithContext(ctx).WithField("input", input)

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = s.config.APIKey
	}
	if apiKey == "" {
		return "", errors.Config(op, nil, "OPENROUTER_API_KEY environment variable not set")
	}

	videoID, ok := youtube.ExtractVideoID(input)
	if !ok {
		return "", errors.InvalidInput(op, nil, "Could not extract video ID from URL")
	}
	logger = logger.WithField("video_id", videoID)
	logger.Info("Extracted video ID")

	transcript, err := s.transcripts.Transcript(ctx, videoID)
	if err != nil {
		logger.WithError(err).Warn("Failed to fetch transcript")
		return "", errors.NotFound(op, err, "Could not fetch transcript for this video")
	}
	// A fetch that succeeds but yields no captions counts as no
	// transcript at all.
	if transcript == "" {
		return "", errors.NotFound(op, nil, "Could not fetch transcript for this video")
	}
	logger.WithField("chars", len(transcript)).Info("Extracted transcript")

	summary, err := s.generate(ctx, apiKey, transcript, input)
	if err != nil {
		logger.WithError(err).Error("Failed to generate summary")
		return "", errors.Upstream(op, err, "Error generating summary")
	}

	return summary, nil
}

func (s *service) generate(ctx context.Context, apiKey, transcript, sourceURL string) (string, error) {
	resp, err := s.completions.CreateChatCompletion(ctx, apiKey, llm.ChatRequest{
		Model: s.config.Model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(sourceURL, truncateTranscript(transcript))},
		},
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	return resp.Choices[0].Message.Content, nil
}
