package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewAnthropicClient builds a client from ANTHROPIC_API_KEY plus the
// optional ANTHROPIC_BASE_URL and ANTHROPIC_MODEL overrides.
func NewAnthropicClient() (*AnthropicClient, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, errors.New("ANTHROPIC_API_KEY missing")
	}
	base := os.Getenv("ANTHROPIC_BASE_URL")
	if base == "" {
		base = "https://api.anthropic.com/v1/messages"
	}
	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	return &AnthropicClient{
		BaseURL: base,
		APIKey:  key,
		Model:   model,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type anthropicReq struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []anthropicMsg `json:"messages"`
}
type anthropicMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type anthropicResp struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// CompleteJSON implements Client.
func (c *AnthropicClient) CompleteJSON(ctx context.Context, systemPrompt, user string) (string, error) {
	payload := anthropicReq{
		Model:     c.Model,
		MaxTokens: 2000,
		System:    systemPrompt,
		Messages: []anthropicMsg{
			{Role: "user", Content: user},
		},
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")

	res, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("anthropic: %s", body)
	}

	var out anthropicResp
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Content) == 0 {
		return "", errors.New("no content")
	}
	return out.Content[0].Text, nil
}
