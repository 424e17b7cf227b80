package models

// ID 翻译后端标识
type ID string

// 支持的翻译后端
const (
	// GPT41 标准GPT-4.1部署
	GPT41 ID = "gpt-4.1"

	// GPT41Mini 轻量级部署（completion-token参数族）
	GPT41Mini ID = "gpt-4.1-mini"

	// O4Mini 推理模型受限变体（不支持temperature，输入长度受限）
	O4Mini ID = "o4-mini"

	// GPT5Chat 完整对话变体（completion-token参数族，支持top_p）
	GPT5Chat ID = "gpt-5-chat"

	// DeepSeekV3 第三方厂商模型（AI Foundry托管）
	DeepSeekV3 ID = "deepseek-v3"

	// AzureTranslator 专用机器翻译服务（非LLM）
	AzureTranslator ID = "azure-translator"
)

// Family 请求参数族，决定请求体的字段选择
type Family int

const (
	// FamilyStandard max_tokens + temperature + top_p + 惩罚系数
	FamilyStandard Family = iota

	// FamilyCompletionLight max_completion_tokens + temperature
	FamilyCompletionLight

	// FamilyCompletionConstrained max_completion_tokens，不可设置temperature
	FamilyCompletionConstrained

	// FamilyCompletionFull max_completion_tokens + temperature + top_p
	FamilyCompletionFull

	// FamilyAlternateVendor max_tokens + temperature（第三方厂商）
	FamilyAlternateVendor

	// FamilyDedicated 专用翻译服务，固定REST形状
	FamilyDedicated
)

// String 返回参数族名称
func (f Family) String() string {
	switch f {
	case FamilyStandard:
		return "standard"
	case FamilyCompletionLight:
		return "completion-light"
	case FamilyCompletionConstrained:
		return "completion-constrained"
	case FamilyCompletionFull:
		return "completion-full"
	case FamilyAlternateVendor:
		return "alternate-vendor"
	case FamilyDedicated:
		return "dedicated"
	default:
		return "unknown"
	}
}

// ProviderConfig 非专用翻译模型的部署配置
type ProviderConfig struct {
	// DeploymentName 部署名称
	DeploymentName string `json:"deployment_name"`

	// APIVersion API版本
	APIVersion string `json:"api_version"`

	// ResourceName 凭证资源名称
	ResourceName string `json:"resource_name"`
}

// entry 注册表条目
type entry struct {
	family   Family
	label    string
	provider *ProviderConfig
}

// registry 静态注册表，编译期定义，运行时只读
var registry = map[ID]entry{
	GPT41: {
		family: FamilyStandard,
		label:  "GPT-4.1",
		provider: &ProviderConfig{
			DeploymentName: "gpt-4.1",
			APIVersion:     "2025-01-01-preview",
			ResourceName:   "primary",
		},
	},
	GPT41Mini: {
		family: FamilyCompletionLight,
		label:  "GPT-4.1-mini",
		provider: &ProviderConfig{
			DeploymentName: "gpt-4.1-mini",
			APIVersion:     "2025-01-01-preview",
			ResourceName:   "primary",
		},
	},
	O4Mini: {
		family: FamilyCompletionConstrained,
		label:  "o4-mini",
		provider: &ProviderConfig{
			DeploymentName: "o4-mini",
			APIVersion:     "2025-01-01-preview",
			ResourceName:   "primary",
		},
	},
	GPT5Chat: {
		family: FamilyCompletionFull,
		label:  "GPT-5-chat",
		provider: &ProviderConfig{
			DeploymentName: "gpt-5-chat",
			APIVersion:     "2025-04-01-preview",
			ResourceName:   "primary",
		},
	},
	DeepSeekV3: {
		family: FamilyAlternateVendor,
		label:  "DeepSeek-V3",
		provider: &ProviderConfig{
			DeploymentName: "DeepSeek-V3-0324",
			APIVersion:     "2024-05-01-preview",
			ResourceName:   "foundry",
		},
	},
	AzureTranslator: {
		family: FamilyDedicated,
		label:  "Azure-Translator",
	},
}

// All 返回所有已注册的模型标识（固定顺序）
func All() []ID {
	return []ID{GPT41, GPT41Mini, O4Mini, GPT5Chat, DeepSeekV3, AzureTranslator}
}

// LLMs 返回所有chat-completion形状的模型标识
func LLMs() []ID {
	ids := make([]ID, 0, len(registry))
	for _, id := range All() {
		if registry[id].family != FamilyDedicated {
			ids = append(ids, id)
		}
	}
	return ids
}

// IsValid 检查标识是否已注册
func IsValid(id ID) bool {
	_, ok := registry[id]
	return ok
}

// FamilyOf 返回模型的参数族
func FamilyOf(id ID) Family {
	return registry[id].family
}

// Label 返回模型的展示名称
func Label(id ID) string {
	if e, ok := registry[id]; ok {
		return e.label
	}
	return string(id)
}

// Resolve 查找模型的部署配置；专用翻译服务没有部署配置，返回false
func Resolve(id ID) (ProviderConfig, bool) {
	e, ok := registry[id]
	if !ok || e.provider == nil {
		return ProviderConfig{}, false
	}
	return *e.provider, true
}

// Parse 从字符串解析模型标识
func Parse(s string) (ID, bool) {
	id := ID(s)
	if IsValid(id) {
		return id, true
	}
	// 也接受展示名称
	for _, candidate := range All() {
		if Label(candidate) == s {
			return candidate, true
		}
	}
	return "", false
}
