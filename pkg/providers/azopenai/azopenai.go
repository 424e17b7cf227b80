package azopenai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/providers"
)

// Config Azure OpenAI配置
type Config struct {
	providers.BaseConfig

	// Credentials 资源名称到API密钥的映射
	Credentials map[string]string `json:"credentials,omitempty"`

	// Deployments 按模型覆盖部署名称（可选）
	Deployments map[models.ID]string `json:"deployments,omitempty"`
}

// Provider 单个chat形状模型的提供商
type Provider struct {
	id         models.ID
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

// 确保实现providers.Provider接口
var _ providers.Provider = (*Provider)(nil)

// New 创建指定模型的提供商
func New(id models.ID, config Config, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{
		id:     id,
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// GetName 获取提供商名称
func (p *Provider) GetName() string {
	return "azopenai/" + string(p.id)
}

// Configured 端点和对应资源的凭证均已提供
func (p *Provider) Configured() bool {
	cfg, ok := models.Resolve(p.id)
	if !ok {
		return false
	}
	return p.config.APIEndpoint != "" && p.credential(cfg.ResourceName) != ""
}

// credential 查找资源的API密钥
func (p *Provider) credential(resource string) string {
	if key, ok := p.config.Credentials[resource]; ok && key != "" {
		return key
	}
	// 单资源部署下直接使用全局密钥
	return p.config.APIKey
}

// deployment 返回模型的部署名称，配置可覆盖注册表默认值
func (p *Provider) deployment(cfg models.ProviderConfig) string {
	if name, ok := p.config.Deployments[p.id]; ok && name != "" {
		return name
	}
	return cfg.DeploymentName
}

// Translate 执行一次chat-completion翻译，单次尝试
func (p *Provider) Translate(ctx context.Context, req *providers.Request) (*providers.Response, error) {
	cfg, ok := models.Resolve(req.Model)
	if !ok {
		return nil, fmt.Errorf("model %s has no deployment config", req.Model)
	}

	chatReq, err := BuildChatRequest(req.Model, p.deployment(cfg), req.Text)
	if err != nil {
		return nil, err
	}

	endpoint := ResolveEndpoint(p.config.APIEndpoint, cfg)

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		endpoint.ChatURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", p.credential(cfg.ResourceName))
	for k, v := range p.config.Headers {
		httpReq.Header.Set(k, v)
	}

	p.logger.Debug("dispatching chat completion",
		zap.String("model", string(req.Model)),
		zap.String("url", endpoint.BaseURL),
		zap.Bool("foundry", endpoint.Foundry))

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, providers.NewError(providers.ErrCodeNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, providers.ClassifyStatus(resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, providers.NewError(providers.ErrCodeBadResponse,
			"failed to decode response: "+err.Error())
	}

	return parseChatResponse(&chatResp)
}

// parseChatResponse 提取并校验翻译内容，按finish_reason分类空响应
func parseChatResponse(resp *ChatResponse) (*providers.Response, error) {
	if len(resp.Choices) == 0 {
		return nil, providers.NewError(providers.ErrCodeEmptyResponse, "no choices in response")
	}

	choice := resp.Choices[0]
	text := strings.TrimSpace(choice.Message.Content)

	if text == "" {
		switch choice.FinishReason {
		case "content_filter":
			return nil, providers.NewError(providers.ErrCodeEmptyResponse,
				"blocked by content filter")
		case "length":
			return nil, providers.NewError(providers.ErrCodeEmptyResponse,
				"Translation truncated: output hit token limit")
		default:
			return nil, providers.NewError(providers.ErrCodeEmptyResponse,
				"empty response from model")
		}
	}

	return &providers.Response{
		Text:      text,
		Model:     resp.Model,
		TokensIn:  resp.Usage.PromptTokens,
		TokensOut: resp.Usage.CompletionTokens,
	}, nil
}

// ChatResponse 聊天响应
type ChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int     `json:"index"`
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
