package azopenai

import (
	"net/url"
	"strings"

	"github.com/esparza-dev/traductor/pkg/models"
)

// foundryHostSuffix AI Foundry形状端点的主机后缀
const foundryHostSuffix = ".services.ai.azure.com"

// resourceOrigins 已知资源名称到固定origin的映射。
// 多个后端资源共存于同一部署时，按资源名覆盖配置的端点。
var resourceOrigins = map[string]string{
	"foundry": "https://shared-eastus2.services.ai.azure.com",
}

// Endpoint 解析后的具体端点
type Endpoint struct {
	// BaseURL chat形状调用的基础URL
	BaseURL string

	// APIVersion 调用使用的API版本
	APIVersion string

	// Foundry 是否为AI Foundry形状（/models路径）
	Foundry bool
}

// ChatURL 返回chat-completion调用的完整URL
func (e Endpoint) ChatURL() string {
	return e.BaseURL + "/chat/completions?api-version=" + url.QueryEscape(e.APIVersion)
}

// ResolveEndpoint 根据原始端点字符串和模型部署配置解析具体端点。
// 永不失败：无法解析的端点按原样作为origin使用（降级模式）。
func ResolveEndpoint(raw string, cfg models.ProviderConfig) Endpoint {
	if origin, ok := resourceOrigins[cfg.ResourceName]; ok {
		raw = origin
	}

	origin, host := parseOrigin(raw)

	if strings.HasSuffix(host, foundryHostSuffix) {
		return Endpoint{
			BaseURL:    origin + "/models",
			APIVersion: cfg.APIVersion,
			Foundry:    true,
		}
	}

	return Endpoint{
		BaseURL:    origin + "/openai/deployments/" + cfg.DeploymentName,
		APIVersion: cfg.APIVersion,
	}
}

// parseOrigin 从原始字符串提取origin和主机名
func parseOrigin(raw string) (origin, host string) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		// 降级：原始字符串按origin处理
		return raw, raw
	}

	return u.Scheme + "://" + u.Host, u.Hostname()
}
