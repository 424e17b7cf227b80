package analyzer

import (
	"math"
	"regexp"
	"strings"
)

// bleuMaxN BLEU计算的最大n-gram长度
const bleuMaxN = 4

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Tokenize 清洗并切分文本：去掉markdown链接保留链接文字，
// 折叠空白，转小写后按空格切分
func Tokenize(text string) []string {
	text = markdownLinkRe.ReplaceAllString(text, "$1")
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")

	if text == "" {
		return nil
	}
	return strings.Split(strings.ToLower(text), " ")
}

// BLEU 计算候选译文相对参考译文的BLEU分数（n-gram 1..4的几何平均乘以简短惩罚）
func BLEU(candidate, reference string) float64 {
	candTokens := Tokenize(candidate)
	refTokens := Tokenize(reference)

	if len(candTokens) == 0 || len(refTokens) == 0 {
		return 0.0
	}

	// 简短惩罚
	bp := 1.0
	if len(candTokens) <= len(refTokens) {
		bp = math.Exp(1.0 - float64(len(refTokens))/float64(len(candTokens)))
	}

	// 各阶n-gram精确率
	precisions := make([]float64, 0, bleuMaxN)
	for n := 1; n <= bleuMaxN; n++ {
		refCounts := ngramCounts(refTokens, n)
		candCounts := ngramCounts(candTokens, n)

		if len(candCounts) == 0 {
			precisions = append(precisions, 0.0)
			continue
		}

		overlap := 0
		total := 0
		for gram, count := range candCounts {
			total += count
			if refCount, ok := refCounts[gram]; ok {
				overlap += min(count, refCount)
			}
		}

		precisions = append(precisions, float64(overlap)/float64(total))
	}

	// 几何平均：任一阶为0则整体为0
	logSum := 0.0
	for _, p := range precisions {
		if p <= 0 {
			return 0.0
		}
		logSum += math.Log(p)
	}

	return bp * math.Exp(logSum/float64(len(precisions)))
}

// ngramCounts 统计n-gram出现次数
func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}
