// internal/enhance/genai.go
package enhance

import (
	"context"
	"fmt"
	"go-beams/internal/config"

	"google.golang.org/genai"
)

// GenAICompleter calls a Gemini model through the GenAI SDK.
type GenAICompleter struct {
	client   *genai.Client
	model    string
	settings config.ModelSettings
}

// NewGenAICompleter creates a completer for settings.Name. It fails with
// ErrNotConfigured when no API key is set.
func NewGenAICompleter(ctx context.Context, settings config.ModelSettings) (*GenAICompleter, error) {
	if settings.APIKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAICompleter{
		client:   client,
		model:    settings.Name,
		settings: settings,
	}, nil
}

func (c *GenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		[]*genai.Content{genai.NewContentFromText(user, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			Temperature:       genai.Ptr(c.settings.Temperature),
			TopP:              genai.Ptr(c.settings.TopP),
			MaxOutputTokens:   c.settings.MaxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}

// Name returns the completer name.
func (c *GenAICompleter) Name() string {
	return fmt.Sprintf("genai:%s", c.model)
}
