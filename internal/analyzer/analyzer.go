// Package analyzer 基于导出的翻译结果CSV做性能分析：
// 以参考模型列为基准计算各模型的BLEU分数、延迟和成功率。
package analyzer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// DefaultReference 默认参考模型标签
const DefaultReference = "GPT-4.1"

// 导出CSV的列前缀
const (
	spanishPrefix = "Spanish-"
	latencyPrefix = "Latency-"
	latencySuffix = " (ms)"
)

// ErrNoModelColumns CSV不含任何模型译文列
var ErrNoModelColumns = errors.New("csv has no Spanish-* model columns")

// ModelStats 单个模型的统计结果
type ModelStats struct {
	// Model 模型标签
	Model string

	// AvgBLEU 成功译文的平均BLEU分数
	AvgBLEU float64

	// AvgLatencyMs 成功译文的平均延迟（毫秒）
	AvgLatencyMs float64

	// SuccessRate 成功比例（0-100）
	SuccessRate float64

	// Efficiency BLEU除以延迟秒数
	Efficiency float64

	// SuccessCount 成功条数
	SuccessCount int

	// Failures 失败条数（mock回退、截断、空译文或零延迟）
	Failures int

	// TotalTests 总条数
	TotalTests int
}

// Analysis 整体分析结果
type Analysis struct {
	// Reference 参考模型标签
	Reference string

	// Stats 各模型统计，按效率降序
	Stats []ModelStats
}

// isFailure 判断一条译文是否为失败结果。
// mock回退标记、API失败说明、截断说明、空译文和零延迟均视为失败。
func isFailure(text string, latencyMs float64) bool {
	return strings.Contains(text, "Mock]") ||
		strings.Contains(text, "API call failed") ||
		strings.Contains(text, "Translation truncated") ||
		strings.TrimSpace(text) == "" ||
		latencyMs == 0
}

// AnalyzeCSV 分析导出CSV。referenceModel为空时使用DefaultReference。
func AnalyzeCSV(r io.Reader, referenceModel string) (*Analysis, error) {
	if referenceModel == "" {
		referenceModel = DefaultReference
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("csv has no data rows")
	}

	header := records[0]

	// 定位译文列和延迟列
	spanishCols := make(map[string]int) // 模型标签 → 列号
	latencyCols := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.HasPrefix(name, spanishPrefix) {
			spanishCols[strings.TrimPrefix(name, spanishPrefix)] = i
		}
		if strings.HasPrefix(name, latencyPrefix) && strings.HasSuffix(name, latencySuffix) {
			model := strings.TrimSuffix(strings.TrimPrefix(name, latencyPrefix), latencySuffix)
			latencyCols[model] = i
		}
	}

	if len(spanishCols) == 0 {
		return nil, ErrNoModelColumns
	}

	refCol, ok := spanishCols[referenceModel]
	if !ok {
		return nil, fmt.Errorf("reference column %q not found", spanishPrefix+referenceModel)
	}

	type accumulator struct {
		bleuScores []float64
		latencies  []float64
		failures   int
		total      int
	}

	acc := make(map[string]*accumulator)
	for model := range spanishCols {
		if model != referenceModel {
			acc[model] = &accumulator{}
		}
	}

	for _, record := range records[1:] {
		if refCol >= len(record) {
			continue
		}
		reference := record[refCol]

		for model, col := range spanishCols {
			if model == referenceModel || col >= len(record) {
				continue
			}

			candidate := record[col]
			latency := 0.0
			if latCol, ok := latencyCols[model]; ok && latCol < len(record) {
				latency, _ = strconv.ParseFloat(strings.TrimSpace(record[latCol]), 64)
			}

			a := acc[model]
			a.total++

			if isFailure(candidate, latency) {
				a.failures++
				continue
			}

			a.bleuScores = append(a.bleuScores, BLEU(candidate, reference))
			a.latencies = append(a.latencies, latency)
		}
	}

	analysis := &Analysis{Reference: referenceModel}
	for model, a := range acc {
		stats := ModelStats{
			Model:        model,
			SuccessCount: len(a.bleuScores),
			Failures:     a.failures,
			TotalTests:   a.total,
		}

		if a.total > 0 {
			stats.SuccessRate = float64(stats.SuccessCount) / float64(a.total) * 100
		}
		if len(a.bleuScores) > 0 {
			stats.AvgBLEU = mean(a.bleuScores)
			stats.AvgLatencyMs = mean(a.latencies)
			if stats.AvgLatencyMs > 0 {
				stats.Efficiency = stats.AvgBLEU / (stats.AvgLatencyMs / 1000)
			}
		}

		analysis.Stats = append(analysis.Stats, stats)
	}

	// 按效率降序，效率相同按标签排序保证确定性
	sort.Slice(analysis.Stats, func(i, j int) bool {
		if analysis.Stats[i].Efficiency != analysis.Stats[j].Efficiency {
			return analysis.Stats[i].Efficiency > analysis.Stats[j].Efficiency
		}
		return analysis.Stats[i].Model < analysis.Stats[j].Model
	})

	return analysis, nil
}

// mean 算术平均
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
