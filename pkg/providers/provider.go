package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/esparza-dev/traductor/pkg/models"
)

// BaseConfig 提供商基础配置
type BaseConfig struct {
	// API配置
	APIKey      string `json:"api_key,omitempty"`
	APIEndpoint string `json:"api_endpoint,omitempty"`

	// 超时（由传输层执行，本层不做额外控制）
	Timeout time.Duration `json:"timeout"`

	// 自定义头部
	Headers map[string]string `json:"headers,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() BaseConfig {
	return BaseConfig{
		Timeout: 2 * time.Minute,
		Headers: make(map[string]string),
	}
}

// Request 提供商请求
type Request struct {
	// Text 去除首尾空白后的待翻译文本，非空
	Text string `json:"text"`

	// Model 目标模型标识
	Model models.ID `json:"model"`
}

// Response 提供商响应
type Response struct {
	// Text 翻译结果
	Text string `json:"text"`

	// Model 实际处理请求的模型
	Model string `json:"model,omitempty"`

	// TokensIn 输入token数
	TokensIn int `json:"tokens_in,omitempty"`

	// TokensOut 输出token数
	TokensOut int `json:"tokens_out,omitempty"`
}

// Provider 翻译提供商接口
type Provider interface {
	// Translate 执行一次翻译请求，单次尝试，不重试
	Translate(ctx context.Context, req *Request) (*Response, error)

	// GetName 获取提供商名称
	GetName() string

	// Configured 是否已配置完整凭证；未配置时调用方应回退到mock
	Configured() bool
}

// 错误代码常量（对应失败分类）
const (
	ErrCodeAuth          = "authentication_failed"
	ErrCodeAccessDenied  = "access_denied"
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeNetwork       = "network_error"
	ErrCodeEmptyResponse = "empty_response"
	ErrCodeBadResponse   = "invalid_response_format"
	ErrCodeOversized     = "input_too_large"
	ErrCodeUpstream      = "upstream_error"
)

// Error 提供商错误
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError 创建提供商错误
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ClassifyStatus 按HTTP状态码分类错误
func ClassifyStatus(status int, body string) *Error {
	switch status {
	case 401:
		return &Error{Code: ErrCodeAuth, Status: status, Message: "authentication failed, check API key"}
	case 403:
		return &Error{Code: ErrCodeAccessDenied, Status: status, Message: "access denied, check subscription"}
	case 429:
		return &Error{Code: ErrCodeRateLimited, Status: status, Message: "rate limit exceeded"}
	default:
		return &Error{Code: ErrCodeUpstream, Status: status, Message: body}
	}
}
