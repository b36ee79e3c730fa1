package langfuse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// PromptConfig names a managed prompt and its local cache file.
type PromptConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	Name      string
	Label     string
	CachePath string
}

var (
	errLangfuseDisabled = errors.New("langfuse integration disabled")
	errNoPromptCache    = errors.New("no local prompt file configured")
)

// PromptLoader fetches a text prompt from Langfuse, caching the last good
// copy on disk and reading it back when the API is unreachable.
type PromptLoader struct {
	cfg        PromptConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewPromptLoader(cfg PromptConfig, logger *zap.Logger) *PromptLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromptLoader{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.Named("langfuse"),
	}
}

// Load returns the prompt text. An error means neither Langfuse nor the
// cache file produced a prompt; callers keep their built-in text.
func (l *PromptLoader) Load(ctx context.Context) (string, error) {
	if l.cfg.Name == "" {
		return readPromptFile(l.cfg.CachePath)
	}

	prompt, err := l.fetch(ctx)
	if err == nil {
		if err := writePromptFile(l.cfg.CachePath, prompt); err != nil {
			l.logger.Warn("failed to cache prompt locally", zap.String("path", l.cfg.CachePath), zap.Error(err))
		}
		return prompt, nil
	}
	if !errors.Is(err, errLangfuseDisabled) {
		l.logger.Warn("prompt fetch failed", zap.String("prompt", l.cfg.Name), zap.Error(err))
	}

	return readPromptFile(l.cfg.CachePath)
}

func (l *PromptLoader) fetch(ctx context.Context) (string, error) {
	if l.cfg.BaseURL == "" || l.cfg.PublicKey == "" || l.cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(l.cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(l.cfg.Name)
	if l.cfg.Label != "" {
		parsed.RawQuery = url.Values{"label": {l.cfg.Label}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, asyncTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(l.cfg.PublicKey, l.cfg.SecretKey)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read prompt response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if !gjson.ValidBytes(body) {
		return "", errors.New("prompt API returned invalid JSON")
	}

	return parsePrompt(gjson.ParseBytes(body))
}

// parsePrompt handles both text prompts and chat prompts; chat messages are
// flattened to "ROLE: content" blocks.
func parsePrompt(doc gjson.Result) (string, error) {
	prompt := doc.Get("prompt")

	switch promptType := doc.Get("type").String(); promptType {
	case "", "text":
		if prompt.Type != gjson.String {
			return "", errors.New("text prompt is not a string")
		}
		return prompt.Str, nil
	case "chat":
		if !prompt.IsArray() {
			return "", errors.New("chat prompt is not a list")
		}
		var b strings.Builder
		for _, msg := range prompt.Array() {
			content := msg.Get("content").String()
			if msg.Get("type").String() == "placeholder" {
				content = ""
				if name := msg.Get("name").String(); name != "" {
					content = "{{" + name + "}}"
				}
			}
			if content == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			role := msg.Get("role").String()
			if role == "" {
				role = "message"
			}
			b.WriteString(strings.ToUpper(role))
			b.WriteString(": ")
			b.WriteString(content)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptType)
	}
}

func readPromptFile(path string) (string, error) {
	if path == "" {
		return "", errNoPromptCache
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func writePromptFile(path, prompt string) error {
	if path == "" {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
