package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/logger"
)

// Defaults of the OpenRouter-compatible chat completions endpoint.
const (
	DefaultEndpoint    = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel       = "anthropic/claude-2"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1500
	DefaultTimeout     = 60 * time.Second
)

const maxErrorBody = 512

// Config 配置生成服务的请求参数。
type Config struct {
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	Referer     string
	Title       string
}

// Client 调用文本生成服务并把输出解码为 Response。
type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

// NewClient 创建 Client；httpClient 为空时按 cfg.Timeout 创建。
func NewClient(cfg Config, httpClient *http.Client, log *logger.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient, log: log}
}

// Generate 请求生成服务。apiKey 为空时直接返回 ErrMissingCredential，不发起请求。
func (c *Client) Generate(ctx context.Context, apiKey string, intent layout.Intent, frame layout.Frame) (*Response, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: BuildPrompt(intent, frame)}},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("编码请求失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	log := c.log.WithFields(map[string]any{"model": c.cfg.Model, "design_type": string(intent.Type)})
	log.Debug("requesting design")
	started := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate design: %w", err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if len(payload) > maxErrorBody {
			payload = payload[:maxErrorBody]
		}
		return nil, &UpstreamError{StatusCode: res.StatusCode, Body: string(payload)}
	}

	var chat chatResponse
	if err := json.Unmarshal(payload, &chat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: 响应中没有 choices", ErrInvalidFormat)
	}

	resp, err := ParseResponse(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]any{
		"elements": len(resp.Design.Elements),
		"elapsed":  time.Since(started).String(),
	}).Info("design generated")
	return resp, nil
}
