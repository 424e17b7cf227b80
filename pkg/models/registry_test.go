package models_test

import (
	"testing"

	"github.com/esparza-dev/traductor/pkg/models"
)

// TestRegistryCompleteness 所有chat形状模型必须有完整的部署配置
func TestRegistryCompleteness(t *testing.T) {
	for _, id := range models.LLMs() {
		cfg, ok := models.Resolve(id)
		if !ok {
			t.Errorf("model %s has no provider config", id)
			continue
		}
		if cfg.DeploymentName == "" {
			t.Errorf("model %s has empty deployment name", id)
		}
		if cfg.APIVersion == "" {
			t.Errorf("model %s has empty api version", id)
		}
		if cfg.ResourceName == "" {
			t.Errorf("model %s has empty resource name", id)
		}
	}
}

// TestDedicatedHasNoProviderConfig 专用翻译服务没有部署配置
func TestDedicatedHasNoProviderConfig(t *testing.T) {
	if _, ok := models.Resolve(models.AzureTranslator); ok {
		t.Errorf("dedicated translation model should have no provider config")
	}
}

// TestLabels 所有模型都有非空展示名称
func TestLabels(t *testing.T) {
	for _, id := range models.All() {
		if models.Label(id) == "" {
			t.Errorf("model %s has empty label", id)
		}
	}

	if got := models.Label(models.GPT41); got != "GPT-4.1" {
		t.Errorf("expected label GPT-4.1, got %s", got)
	}
}

// TestParse 解析模型标识和展示名称
func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   models.ID
		wantOK bool
	}{
		{"gpt-4.1", models.GPT41, true},
		{"GPT-4.1", models.GPT41, true},
		{"azure-translator", models.AzureTranslator, true},
		{"DeepSeek-V3", models.DeepSeekV3, true},
		{"gpt-9000", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := models.Parse(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestFamilies 参数族分配
func TestFamilies(t *testing.T) {
	tests := []struct {
		id   models.ID
		want models.Family
	}{
		{models.GPT41, models.FamilyStandard},
		{models.GPT41Mini, models.FamilyCompletionLight},
		{models.O4Mini, models.FamilyCompletionConstrained},
		{models.GPT5Chat, models.FamilyCompletionFull},
		{models.DeepSeekV3, models.FamilyAlternateVendor},
		{models.AzureTranslator, models.FamilyDedicated},
	}

	for _, tt := range tests {
		if got := models.FamilyOf(tt.id); got != tt.want {
			t.Errorf("FamilyOf(%s) = %s, want %s", tt.id, got, tt.want)
		}
	}
}
