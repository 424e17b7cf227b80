package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Report 打印性能分析报告
func Report(analysis *Analysis) {
	title := color.New(color.FgCyan, color.Bold)
	title.Println("📊 Translation Performance Report")
	title.Println(strings.Repeat("=", 60))

	fmt.Printf("Reference model: %s\n\n", analysis.Reference)

	// 汇总表
	fmt.Printf("%-25s %-8s %-12s %-9s %s\n", "Model", "BLEU", "Latency", "Success%", "Efficiency")
	fmt.Println(strings.Repeat("-", 70))

	for _, s := range analysis.Stats {
		status := statusMark(s.SuccessRate)
		fmt.Printf("%-25s %-8.4f %-12s %-9s %-10.4f %s\n",
			s.Model, s.AvgBLEU,
			fmt.Sprintf("%.0fms", s.AvgLatencyMs),
			fmt.Sprintf("%.1f%%", s.SuccessRate),
			s.Efficiency, status)
	}

	printCategories(analysis)
}

// statusMark 成功率标记
func statusMark(rate float64) string {
	switch {
	case rate == 100:
		return "✅"
	case rate > 0:
		return "⚠️"
	default:
		return "❌"
	}
}

// printCategories 按可用性分类打印
func printCategories(analysis *Analysis) {
	var working, partial []ModelStats
	var failed []string

	for _, s := range analysis.Stats {
		switch {
		case s.SuccessRate == 100:
			working = append(working, s)
		case s.SuccessRate > 0:
			partial = append(partial, s)
		default:
			failed = append(failed, s.Model)
		}
	}

	section := color.New(color.FgYellow, color.Bold)

	fmt.Println()
	section.Println("🎯 Performance Categories")
	fmt.Println(strings.Repeat("-", 60))

	// 可用模型按延迟升序
	sort.Slice(working, func(i, j int) bool {
		return working[i].AvgLatencyMs < working[j].AvgLatencyMs
	})

	color.Green("✅ Fully working: %d models", len(working))
	for rank, s := range working {
		fmt.Printf("   %d. %s: %.0fms\n", rank+1, s.Model, s.AvgLatencyMs)
	}

	color.Yellow("⚠️  Partially working: %d models", len(partial))
	for _, s := range partial {
		fmt.Printf("   • %s: %d failures\n", s.Model, s.Failures)
	}

	color.Red("❌ Failed: %d models", len(failed))
	for _, model := range failed {
		fmt.Printf("   • %s: no successful translations\n", model)
	}

	if len(analysis.Stats) > 0 {
		operational := float64(len(working)) / float64(len(analysis.Stats)) * 100
		fmt.Println()
		section.Println("💡 Overall Assessment")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("Operational rate: %.1f%% (%d/%d)\n", operational, len(working), len(analysis.Stats))

		if len(working) > 0 {
			fastest := working[0]
			slowest := working[len(working)-1]
			fmt.Printf("⚡ Fastest: %s (%.0fms)\n", fastest.Model, fastest.AvgLatencyMs)
			fmt.Printf("🐌 Slowest: %s (%.0fms)\n", slowest.Model, slowest.AvgLatencyMs)
		}
	}
}
