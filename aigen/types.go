package aigen

import (
	"errors"
	"fmt"

	"github.com/ByLCY/designkit/adapter"
)

var (
	// ErrMissingCredential 表示尚未保存 API key；在发起任何网络请求之前返回。
	ErrMissingCredential = errors.New("api key not set")
	// ErrInvalidFormat 表示响应中找不到可解析的 JSON 设计。
	ErrInvalidFormat = errors.New("invalid ai response format")
)

// UpstreamError 表示生成服务返回了非成功状态。
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to generate design: status %d", e.StatusCode)
}

// Response 是生成服务返回的结构化设计。
type Response struct {
	Design Design `json:"design" mapstructure:"design"`
}

// Design 描述布局说明、抽象元素与风格提示。
type Design struct {
	Layout   string                    `json:"layout" mapstructure:"layout"`
	Elements []adapter.AbstractElement `json:"elements" mapstructure:"elements"`
	Style    StyleHints                `json:"style" mapstructure:"style"`
}

// StyleHints 是生成服务给出的风格建议，仅用于展示与日志。
type StyleHints struct {
	Colors     []string   `json:"colors" mapstructure:"colors"`
	Typography Typography `json:"typography" mapstructure:"typography"`
	Spacing    Spacing    `json:"spacing" mapstructure:"spacing"`
}

type Typography struct {
	Headings string `json:"headings" mapstructure:"headings"`
	Body     string `json:"body" mapstructure:"body"`
}

type Spacing struct {
	Padding float64 `json:"padding" mapstructure:"padding"`
	Gap     float64 `json:"gap" mapstructure:"gap"`
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
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
