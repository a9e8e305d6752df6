package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Client wraps a genai client configured for the Gemini API backend.
type Client struct {
	genai *genai.Client
	log   zerolog.Logger
}

func NewClient(ctx context.Context, apiKey string, log zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is required; set it with: export GEMINI_API_KEY='your-api-key'")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		genai: gc,
		log:   log.With().Str("component", "gemini").Logger(),
	}, nil
}
