package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// TranslatorConfig 专用翻译服务配置。三项必须同时提供，
// 部分缺失视为未配置，所有调用走mock。
type TranslatorConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Region   string `mapstructure:"region"`
}

// Configured 三项均已提供
func (t TranslatorConfig) Configured() bool {
	return t.Endpoint != "" && t.APIKey != "" && t.Region != ""
}

// Config 保存全部配置。进程启动时加载一次，此后只读。
type Config struct {
	// Endpoint Azure OpenAI端点（自由格式URL）
	Endpoint string `mapstructure:"endpoint"`

	// APIKey 默认API密钥
	APIKey string `mapstructure:"api_key"`

	// Credentials 资源名称到API密钥的映射（多资源部署用）
	Credentials map[string]string `mapstructure:"credentials"`

	// Deployments 按模型标识覆盖部署名称
	Deployments map[string]string `mapstructure:"deployments"`

	// Translator 专用翻译服务配置
	Translator TranslatorConfig `mapstructure:"translator"`

	// Debug 调试日志
	Debug bool `mapstructure:"debug"`
}

// OpenAIConfigured 端点和密钥均已提供
func (c *Config) OpenAIConfigured() bool {
	return c.Endpoint != "" && (c.APIKey != "" || len(c.Credentials) > 0)
}

// Status 返回面向用户的配置状态描述
func (c *Config) Status() string {
	var parts []string

	if c.OpenAIConfigured() {
		parts = append(parts, "Azure OpenAI: configured")
	} else {
		parts = append(parts, "Azure OpenAI: not configured (demo mode)")
	}

	if c.Translator.Configured() {
		parts = append(parts, "Translator: configured")
	} else {
		parts = append(parts, "Translator: not configured (demo mode)")
	}

	return strings.Join(parts, "; ")
}

// Load 从文件和环境变量加载配置。配置文件可选，缺失时仅使用环境变量。
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName(".traductor")
		v.SetConfigType("yaml")
	}

	// 环境变量绑定
	_ = v.BindEnv("endpoint", "AZURE_OPENAI_ENDPOINT")
	_ = v.BindEnv("api_key", "AZURE_OPENAI_KEY")
	_ = v.BindEnv("translator.endpoint", "AZURE_TRANSLATOR_ENDPOINT")
	_ = v.BindEnv("translator.api_key", "AZURE_TRANSLATOR_KEY")
	_ = v.BindEnv("translator.region", "AZURE_TRANSLATOR_REGION")

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件不是错误：走环境变量，缺失的后端以mock模式运行
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &config, nil
}
