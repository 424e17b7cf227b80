package cli

import (
	"go.uber.org/zap"

	"github.com/esparza-dev/traductor/internal/config"
	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/providers"
	"github.com/esparza-dev/traductor/pkg/providers/azopenai"
	"github.com/esparza-dev/traductor/pkg/providers/aztranslator"
)

// buildRegistry 按配置装配提供商注册表。
// 每个chat形状模型注册一个Azure OpenAI提供商，专用翻译服务单独注册。
func buildRegistry(cfg *config.Config, log *zap.Logger) *providers.Registry {
	registry := providers.NewRegistry()

	openaiCfg := azopenai.Config{
		BaseConfig:  providers.DefaultConfig(),
		Credentials: cfg.Credentials,
		Deployments: make(map[models.ID]string, len(cfg.Deployments)),
	}
	openaiCfg.APIEndpoint = cfg.Endpoint
	openaiCfg.APIKey = cfg.APIKey

	for raw, deployment := range cfg.Deployments {
		if id, ok := models.Parse(raw); ok {
			openaiCfg.Deployments[id] = deployment
		}
	}

	for _, id := range models.LLMs() {
		_ = registry.Register(id, azopenai.New(id, openaiCfg, log))
	}

	translatorCfg := aztranslator.DefaultConfig()
	translatorCfg.APIEndpoint = cfg.Translator.Endpoint
	translatorCfg.APIKey = cfg.Translator.APIKey
	translatorCfg.Region = cfg.Translator.Region

	_ = registry.Register(models.AzureTranslator, aztranslator.New(translatorCfg))

	return registry
}
