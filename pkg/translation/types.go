package translation

import (
	"github.com/esparza-dev/traductor/pkg/models"
)

// Request 翻译请求，每次调用创建，不持久化
type Request struct {
	// Text 待翻译文本（调用前去除首尾空白后必须非空）
	Text string `json:"text"`

	// Model 目标模型标识
	Model models.ID `json:"model"`
}

// Result 翻译结果，创建后不再修改，由调用方持有
type Result struct {
	// ID 本次翻译的唯一标识
	ID string `json:"id"`

	// Text 译文；降级时为mock输出（可能附带失败说明）
	Text string `json:"text"`

	// Model 产生结果的模型
	Model models.ID `json:"model"`

	// Degraded 是否为mock回退结果
	Degraded bool `json:"degraded"`

	// Reason 降级原因，仅Degraded为true时非空
	Reason string `json:"reason,omitempty"`

	// LatencyMs 从发起到解析完成的墙钟耗时（毫秒），≥0
	LatencyMs int64 `json:"latency_ms"`

	// Timestamp ISO-8601格式的完成时间
	Timestamp string `json:"timestamp"`
}

// Progress 批量翻译进度
type Progress struct {
	// Total 去重后的文本总数
	Total int `json:"total"`

	// Completed 已完成（所有选定模型）的去重文本数
	Completed int `json:"completed"`

	// Fraction 完成比例，最后一条完成后恰好为1.0
	Fraction float64 `json:"fraction"`

	// Current 当前完成的文本（截断展示用）
	Current string `json:"current"`
}

// BatchItem 每个去重后源文本一条，跨所有选定模型共享
type BatchItem struct {
	// SequenceNumber 序号，从1开始
	SequenceNumber int `json:"sequence_number"`

	// SourceText 源文本
	SourceText string `json:"source_text"`

	// Translations 模型标识到译文的映射
	Translations map[models.ID]string `json:"translations"`

	// Results 模型标识到完整结果的映射（含延迟和降级信息）
	Results map[models.ID]*Result `json:"results"`
}

// BatchResult 批量翻译结果，按去重后首次出现顺序排列
type BatchResult struct {
	// Items 去重后的条目
	Items []BatchItem `json:"items"`

	index map[string]int
}

// Lookup 按源文本查找条目，调用方用它将结果重组回原始行顺序
func (b *BatchResult) Lookup(sourceText string) (*BatchItem, bool) {
	i, ok := b.index[sourceText]
	if !ok {
		return nil, false
	}
	return &b.Items[i], true
}
