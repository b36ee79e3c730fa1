package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient implements TextGenerator using the OpenAI chat completions API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = defaultOpenAIModel
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// Generate sends prompt as a single user message.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrGenerationUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrGenerationResponse)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty message content", ErrGenerationResponse)
	}

	return content, nil
}
