package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"
)

// TextGenerator produces raw text from a prompt. Implementations wrap an
// external generative-text endpoint; no schema compliance is guaranteed.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini API through the official genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed text generator.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Generate sends the prompt as a single user turn and returns the raw
// response text. Empty output is reported as an upstream failure.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("gemini request failed: %w", err)}
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Err: fmt.Errorf("no candidates in Gemini response")}
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", &UpstreamError{Err: fmt.Errorf("gemini response did not include any output text")}
	}

	log.Printf("Gemini generation completed in %v (output %d chars)", time.Since(start), len(text))

	if result.UsageMetadata != nil {
		log.Printf("Gemini usage: input=%d output=%d total=%d",
			result.UsageMetadata.PromptTokenCount,
			result.UsageMetadata.CandidatesTokenCount,
			result.UsageMetadata.TotalTokenCount)
	}

	return text, nil
}
