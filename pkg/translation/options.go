package translation

import (
	"time"

	"go.uber.org/zap"
)

// Option 服务配置选项函数
type Option func(*serviceOptions)

// serviceOptions 服务内部选项
type serviceOptions struct {
	logger           *zap.Logger
	progressCallback func(*Progress)
	now              func() time.Time
}

// WithLogger 设置logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithProgressCallback 设置批量翻译进度回调
func WithProgressCallback(callback func(*Progress)) Option {
	return func(o *serviceOptions) {
		o.progressCallback = callback
	}
}

// WithClock 设置时间源（测试用）
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}
