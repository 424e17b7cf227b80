package azopenai

import (
	"fmt"

	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/providers"
)

// systemInstruction 固定的翻译系统指令
const systemInstruction = "You are a professional English to Spanish translator. " +
	"Translate the user's text from English to Spanish. " +
	"Preserve all markup, formatting, named entities and domain-specific terminology exactly as they appear. " +
	"Return only the translated text without explanations."

// 请求参数常量
const (
	defaultTemperature = float32(0.3)
	defaultTopP        = float32(1.0)
	maxOutputTokens    = 2000

	// constrainedTokenLimit 受限变体的最大估算输入token数
	constrainedTokenLimit = 2500
)

// Message 聊天消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest 聊天请求。指针字段控制序列化时字段的有无：
// 不同参数族对未知字段和缺失字段的拒绝行为不同，必须精确复现。
type ChatRequest struct {
	Model               string    `json:"model"`
	Messages            []Message `json:"messages"`
	MaxTokens           *int      `json:"max_tokens,omitempty"`
	MaxCompletionTokens *int      `json:"max_completion_tokens,omitempty"`
	Temperature         *float32  `json:"temperature,omitempty"`
	TopP                *float32  `json:"top_p,omitempty"`
	FrequencyPenalty    *float32  `json:"frequency_penalty,omitempty"`
	PresencePenalty     *float32  `json:"presence_penalty,omitempty"`
}

// EstimateTokens 估算文本的token数（字符数/4，向上取整）
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// BuildChatRequest 按模型参数族构建请求体，不执行任何网络I/O。
// 受限变体在构建前检查输入长度，超限直接失败，不进入mock回退。
func BuildChatRequest(id models.ID, deployment, text string) (*ChatRequest, error) {
	req := &ChatRequest{
		Model: deployment,
		Messages: []Message{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: text},
		},
	}

	maxTokens := maxOutputTokens
	temperature := defaultTemperature
	topP := defaultTopP
	zero := float32(0)

	switch models.FamilyOf(id) {
	case models.FamilyStandard:
		req.MaxTokens = &maxTokens
		req.Temperature = &temperature
		req.TopP = &topP
		req.FrequencyPenalty = &zero
		req.PresencePenalty = &zero

	case models.FamilyCompletionLight:
		req.MaxCompletionTokens = &maxTokens
		req.Temperature = &temperature

	case models.FamilyCompletionConstrained:
		if est := EstimateTokens(text); est > constrainedTokenLimit {
			return nil, providers.NewError(providers.ErrCodeOversized,
				fmt.Sprintf("input too large for %s: estimated %d tokens exceeds limit of %d",
					models.Label(id), est, constrainedTokenLimit))
		}
		// 受限变体拒绝非默认temperature，不设置
		req.MaxCompletionTokens = &maxTokens
		req.FrequencyPenalty = &zero
		req.PresencePenalty = &zero

	case models.FamilyCompletionFull:
		req.MaxCompletionTokens = &maxTokens
		req.Temperature = &temperature
		req.TopP = &topP

	case models.FamilyAlternateVendor:
		req.MaxTokens = &maxTokens
		req.Temperature = &temperature

	default:
		return nil, fmt.Errorf("model %s is not a chat-completion model", id)
	}

	return req, nil
}
