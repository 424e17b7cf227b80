// Package mock 提供确定性的占位翻译，用于未配置凭证或真实调用失败时的回退。
// 输出必须与真实翻译明显可区分。
package mock

import (
	"fmt"
	"strings"

	"github.com/esparza-dev/traductor/pkg/models"
)

// phrase 固定短语词典条目
type phrase struct {
	english string
	spanish string
}

// phrases 固定短语词典，按匹配优先级排列（长短语在前）
var phrases = []phrase{
	{"good morning", "buenos días"},
	{"good night", "buenas noches"},
	{"thank you", "gracias"},
	{"hello", "hola"},
	{"goodbye", "adiós"},
	{"please", "por favor"},
	{"water", "agua"},
	{"world", "mundo"},
	{"house", "casa"},
	{"cat", "gato"},
}

// Translate 纯函数：相同输入总是产生相同输出。
// 词典短语是输入的子串时返回带模型标签的固定译文，否则返回嵌入原文的通用占位。
func Translate(text string, id models.ID) string {
	label := models.Label(id)
	lowered := strings.ToLower(text)

	for _, p := range phrases {
		if strings.Contains(lowered, p.english) {
			return fmt.Sprintf("%s (translated with %s)", p.spanish, label)
		}
	}

	return fmt.Sprintf("[%s Mock] Traducción simulada de: %q", label, text)
}

// FallbackNote 构造真实调用失败后附加到mock译文上的说明
func FallbackNote(reason string) string {
	return fmt.Sprintf(" [API call failed: %s]", reason)
}
