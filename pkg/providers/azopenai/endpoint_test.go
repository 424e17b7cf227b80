package azopenai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esparza-dev/traductor/pkg/models"
)

func TestResolveEndpointStandard(t *testing.T) {
	cfg := models.ProviderConfig{
		DeploymentName: "gpt-4.1",
		APIVersion:     "2025-01-01-preview",
		ResourceName:   "primary",
	}

	ep := ResolveEndpoint("https://myresource.openai.azure.com/", cfg)

	assert.False(t, ep.Foundry)
	assert.Equal(t, "https://myresource.openai.azure.com/openai/deployments/gpt-4.1", ep.BaseURL)
	assert.Equal(t, "https://myresource.openai.azure.com/openai/deployments/gpt-4.1/chat/completions?api-version=2025-01-01-preview", ep.ChatURL())
}

func TestResolveEndpointFoundry(t *testing.T) {
	cfg := models.ProviderConfig{
		DeploymentName: "gpt-4.1",
		APIVersion:     "2025-01-01-preview",
		ResourceName:   "primary",
	}

	ep := ResolveEndpoint("https://myhub.services.ai.azure.com/api/projects/demo", cfg)

	assert.True(t, ep.Foundry)
	assert.Equal(t, "https://myhub.services.ai.azure.com/models", ep.BaseURL)
}

// TestResolveEndpointMalformed 无法解析的端点按原样降级使用，永不报错
func TestResolveEndpointMalformed(t *testing.T) {
	cfg := models.ProviderConfig{
		DeploymentName: "gpt-4.1",
		APIVersion:     "2025-01-01-preview",
		ResourceName:   "primary",
	}

	tests := []string{
		"not a url at all",
		"myresource.openai.azure.com",
		"://broken",
		"",
	}

	for _, raw := range tests {
		ep := ResolveEndpoint(raw, cfg)
		assert.NotEmpty(t, ep.BaseURL, "endpoint for %q should never be empty", raw)
		assert.Contains(t, ep.BaseURL, "/openai/deployments/gpt-4.1")
	}
}

// TestResolveEndpointResourceOverride 已知资源名覆盖配置的端点
func TestResolveEndpointResourceOverride(t *testing.T) {
	cfg := models.ProviderConfig{
		DeploymentName: "DeepSeek-V3-0324",
		APIVersion:     "2024-05-01-preview",
		ResourceName:   "foundry",
	}

	ep := ResolveEndpoint("https://myresource.openai.azure.com", cfg)

	assert.True(t, ep.Foundry)
	assert.Equal(t, "https://shared-eastus2.services.ai.azure.com/models", ep.BaseURL)
}
