package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	requestTemperature = 0.7
	requestMaxTokens   = 1000
)

// Client speaks the OpenAI-compatible chat-completion protocol. It carries
// no retry logic; the caller decides whether to re-invoke.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatStreamFrame struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one blocking chat-completion request and returns the
// model's full response text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.post(ctx, system, user, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("ai: response contained no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

// Stream sends a streaming chat-completion request and invokes onChunk for
// each incremental text fragment, in arrival order. It returns the
// concatenated full text once the stream ends. Frames that fail to decode
// are skipped, matching the forgiving consumption the SSE framing expects.
func (c *Client) Stream(ctx context.Context, system, user string, onChunk func(string)) (string, error) {
	resp, err := c.post(ctx, system, user, true)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}
		var frame chatStreamFrame
		if err := json.Unmarshal([]byte(data), &frame); err != nil {
			continue
		}
		if len(frame.Choices) == 0 {
			continue
		}
		content := frame.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		full.WriteString(content)
		if onChunk != nil {
			onChunk(content)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("ai: read stream: %w", err)
	}
	return full.String(), nil
}

func (c *Client) post(ctx context.Context, system, user string, stream bool) (*http.Response, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: requestTemperature,
		MaxTokens:   requestMaxTokens,
		Stream:      stream,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai: request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		var upstream apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&upstream); decodeErr == nil && upstream.Error.Message != "" {
			return nil, fmt.Errorf("ai: api error: %s", upstream.Error.Message)
		}
		return nil, fmt.Errorf("ai: api returned status %d", resp.StatusCode)
	}
	return resp, nil
}
