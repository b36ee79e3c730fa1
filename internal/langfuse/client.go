// Package langfuse is a small HTTP client for Langfuse: summary traces,
// user feedback scores and prompt management. An unconfigured client is a
// no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// asyncTimeout is the maximum time to wait for async Langfuse API calls.
const asyncTimeout = 5 * time.Second

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace records a trace in the background and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Close waits for in-flight sends until ctx is done.
	Close(ctx context.Context) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string // generated when empty
	UserID   string
	Name     string // e.g. "weekly-summary"
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string // e.g. "user_rating"
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
	Logger      *zap.Logger
}

func (c Config) enabled() bool {
	return c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

type client struct {
	baseURL     string
	publicKey   string
	secretKey   string
	environment string
	enabled     bool
	httpClient  *http.Client
	logger      *zap.Logger
	pending     sync.WaitGroup
}

// NewClient creates a new Langfuse client.
// If baseURL or keys are empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("langfuse")

	enabled := cfg.enabled()
	switch {
	case enabled:
		logger.Info("langfuse enabled", zap.String("base_url", cfg.BaseURL), zap.String("environment", cfg.Environment))
	case cfg.BaseURL == "":
		logger.Info("langfuse disabled: LANGFUSE_BASE_URL is empty")
	case cfg.PublicKey == "":
		logger.Info("langfuse disabled: LANGFUSE_PUBLIC_KEY is empty")
	default:
		logger.Info("langfuse disabled: LANGFUSE_SECRET_KEY is empty")
	}

	return &client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		enabled:     enabled,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := in.Metadata
	if c.environment != "" {
		if metadata == nil {
			metadata = make(map[string]any)
		}
		metadata["environment"] = c.environment
	}

	c.sendAsync(ingestionEvent{
		ID:        uuid.New().String(),
		Type:      "trace-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: traceBody{
			ID:       traceID,
			Name:     in.Name,
			UserID:   in.UserID,
			Input:    in.Input,
			Output:   in.Output,
			Tags:     in.Tags,
			Metadata: metadata,
		},
	})

	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}

	c.sendAsync(ingestionEvent{
		ID:        uuid.New().String(),
		Type:      "score-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: scoreBody{
			ID:      uuid.New().String(),
			TraceID: in.TraceID,
			Name:    in.Name,
			Value:   in.Value,
			Comment: in.Comment,
		},
	})

	return nil
}

func (c *client) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sendAsync posts the event off the request path. Failures are only logged.
func (c *client) sendAsync(event ingestionEvent) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if err := c.sendBatch(ctx, []ingestionEvent{event}); err != nil {
			c.logger.Warn("async send failed", zap.String("event_type", event.Type), zap.Error(err))
		}
	}()
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}

	return nil
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
