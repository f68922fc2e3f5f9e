package generativeAI

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient adapts the Gemini API to the chat-completion Client shape.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrNotConfigured)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string { return "gemini" }

func (c *GeminiClient) Chat(ctx context.Context, messages []Message, temperature float32, forceJSON bool) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](temperature),
	}
	if forceJSON {
		config.ResponseMIMEType = "application/json"
	}

	// Gemini takes a single prompt plus an optional system instruction
	// rather than a message list.
	var system, user strings.Builder
	for _, m := range messages {
		if m.Role == RoleSystem {
			system.WriteString(m.Content)
			system.WriteString("\n")
			continue
		}
		user.WriteString(m.Content)
		user.WriteString("\n")
	}
	if system.Len() > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system.String()}},
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user.String()), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	txt := result.Text()
	if txt == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return txt, nil
}
