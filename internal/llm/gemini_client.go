package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel   = "gemini-1.5-flash"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/"
)

// GeminiClient implements TextGenerator using the Gemini generateContent API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client.
// Returns nil if apiKey is empty or the SDK rejects the configuration.
func NewGeminiClient(apiKey, model, baseURL string, httpClient *http.Client) *GeminiClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}
}

// Generate sends prompt as a single user turn and returns the candidate text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrGenerationUnavailable
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationRequest, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text in candidates", ErrGenerationResponse)
	}

	return text, nil
}
