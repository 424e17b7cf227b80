package translation

import (
	"errors"

	"github.com/esparza-dev/traductor/pkg/providers"
)

// 预定义错误
var (
	// ErrEmptyText 空文本错误
	ErrEmptyText = errors.New("empty text provided")

	// ErrUnknownModel 未注册的模型标识
	ErrUnknownModel = errors.New("unknown model id")

	// ErrNoModels 批量翻译未选择任何模型
	ErrNoModels = errors.New("no models selected")

	// ErrNoTexts 批量翻译输入为空
	ErrNoTexts = errors.New("no texts provided")
)

// IsOversized 输入超过模型长度限制。这是唯一不回退到mock的调用级失败：
// 超长输入没有有意义的纠正性回退，直接让调用失败。
func IsOversized(err error) bool {
	var perr *providers.Error
	if errors.As(err, &perr) {
		return perr.Code == providers.ErrCodeOversized
	}
	return false
}
