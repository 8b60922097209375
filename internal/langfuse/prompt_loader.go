package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// PromptLoaderConfig describes how to load a prompt from Langfuse or fallback storage.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	SavePath    string
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// ErrNoPrompt means neither Langfuse nor the local file produced a prompt.
var ErrNoPrompt = errors.New("no prompt available")

// LoadPrompt retrieves a prompt from Langfuse, caching it at SavePath. When
// Langfuse is not configured or fails, the cached file is used instead.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PromptName == "" {
		return readPromptFromFile(cfg.SavePath)
	}

	prompt, err := fetchPromptFromLangfuse(ctx, cfg)
	if err == nil {
		if err := savePromptToFile(cfg.SavePath, prompt); err != nil {
			logger.Warn("failed to cache prompt locally", zap.String("path", cfg.SavePath), zap.Error(err))
		}
		return prompt, nil
	}
	if !errors.Is(err, errLangfuseDisabled) {
		logger.Warn("prompt fetch failed, using local copy", zap.String("prompt", cfg.PromptName), zap.Error(err))
	}
	return readPromptFromFile(cfg.SavePath)
}

func fetchPromptFromLangfuse(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}

	req := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetBasicAuth(cfg.PublicKey, cfg.SecretKey).
		SetHeader("Accept", "application/json").
		R().
		SetContext(requestCtx).
		SetPathParam("name", cfg.PromptName).
		SetResult(&promptResp)
	if cfg.PromptLabel != "" {
		req.SetQueryParam("label", cfg.PromptLabel)
	}

	resp, err := req.Get("/api/public/v2/prompts/{name}")
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	if resp.IsError() {
		body := resp.String()
		if len(body) > 4096 {
			body = body[:4096]
		}
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode(), strings.TrimSpace(body))
	}

	switch promptResp.Type {
	case "", "text":
		var textPrompt string
		if err := json.Unmarshal(promptResp.Prompt, &textPrompt); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return textPrompt, nil
	case "chat":
		var chatMessages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &chatMessages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(chatMessages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func flattenChatMessages(messages []chatPromptMessage) string {
	var builder strings.Builder
	for _, msg := range messages {
		content := chatMessageContent(msg)
		if content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		builder.WriteString(strings.ToUpper(role))
		builder.WriteString(": ")
		builder.WriteString(content)
	}
	return builder.String()
}

func chatMessageContent(msg chatPromptMessage) string {
	if msg.Type == "placeholder" {
		if msg.Name != "" {
			return "{{" + msg.Name + "}}"
		}
		return ""
	}
	return msg.Content
}

func readPromptFromFile(path string) (string, error) {
	if path == "" {
		return "", ErrNoPrompt
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read local prompt file: %v", ErrNoPrompt, err)
	}
	return string(data), nil
}

func savePromptToFile(path, prompt string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
