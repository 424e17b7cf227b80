package aztranslator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"github.com/esparza-dev/traductor/pkg/providers"
)

// apiVersion 专用翻译服务的固定API版本
const apiVersion = "3.0"

// Config 专用翻译服务配置。三项必须同时提供，部分缺失视为未配置。
type Config struct {
	providers.BaseConfig

	// Region 订阅区域
	Region string `json:"region"`

	// Source 源语言
	Source language.Tag `json:"-"`

	// Target 目标语言
	Target language.Tag `json:"-"`
}

// DefaultConfig 返回默认配置（英语到西班牙语）
func DefaultConfig() Config {
	return Config{
		BaseConfig: providers.DefaultConfig(),
		Source:     language.English,
		Target:     language.Spanish,
	}
}

// Provider 专用机器翻译服务提供商
type Provider struct {
	config     Config
	httpClient *http.Client
}

// 确保实现providers.Provider接口
var _ providers.Provider = (*Provider)(nil)

// New 创建专用翻译服务提供商
func New(config Config) *Provider {
	if config.Source == (language.Tag{}) {
		config.Source = language.English
	}
	if config.Target == (language.Tag{}) {
		config.Target = language.Spanish
	}

	return &Provider{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetName 获取提供商名称
func (p *Provider) GetName() string {
	return "aztranslator"
}

// Configured 端点、密钥和区域均已提供
func (p *Provider) Configured() bool {
	return p.config.APIEndpoint != "" && p.config.APIKey != "" && p.config.Region != ""
}

// Translate 执行一次翻译请求，单次尝试
func (p *Provider) Translate(ctx context.Context, req *providers.Request) (*providers.Response, error) {
	body, err := json.Marshal([]translateInput{{Text: req.Text}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.translateURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", p.config.APIKey)
	httpReq.Header.Set("Ocp-Apim-Subscription-Region", p.config.Region)
	for k, v := range p.config.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, providers.NewError(providers.ErrCodeNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(resp.Body)
		return nil, providers.ClassifyStatus(resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var results []translateResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, providers.NewError(providers.ErrCodeBadResponse,
			"invalid response format: "+err.Error())
	}

	if len(results) == 0 || len(results[0].Translations) == 0 {
		return nil, providers.NewError(providers.ErrCodeBadResponse,
			"invalid response format: no translations in response")
	}

	return &providers.Response{
		Text: results[0].Translations[0].Text,
	}, nil
}

// translateURL 构建固定形状的翻译URL
func (p *Provider) translateURL() string {
	params := url.Values{}
	params.Set("api-version", apiVersion)
	params.Set("from", p.config.Source.String())
	params.Set("to", p.config.Target.String())

	return strings.TrimRight(p.config.APIEndpoint, "/") + "/translate?" + params.Encode()
}

// translateInput 请求体元素
type translateInput struct {
	Text string `json:"Text"`
}

// translateResult 响应体元素
type translateResult struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}
