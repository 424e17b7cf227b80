package translation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/providers"
	"github.com/esparza-dev/traductor/pkg/providers/mock"
)

// Service 翻译编排服务。显式构造、依赖注入，配置加载一次后只读，
// 便于测试替换fixture。
type Service struct {
	registry *providers.Registry
	options  serviceOptions
}

// New 创建新的翻译服务
func New(registry *providers.Registry, opts ...Option) (*Service, error) {
	if registry == nil {
		registry = providers.NewRegistry()
	}

	options := serviceOptions{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}
	if options.now == nil {
		options.now = time.Now
	}

	return &Service{
		registry: registry,
		options:  options,
	}, nil
}

// Translate 执行单次翻译。契约：除空文本和超长输入的预检外，
// 本边界之内的所有失败都转换为携带mock译文和原因的降级Result，不向外抛出。
func (s *Service) Translate(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, ErrEmptyText
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	if !models.IsValid(req.Model) {
		return nil, ErrUnknownModel
	}

	start := s.options.now()

	provider, err := s.registry.Get(req.Model)
	if err != nil || !provider.Configured() {
		// 配置缺失不是致命错误：直接走mock，不附加失败说明
		s.options.logger.Debug("provider not configured, using mock translation",
			zap.String("model", string(req.Model)))
		return s.result(mock.Translate(text, req.Model), req.Model,
			true, "credentials not configured", start), nil
	}

	resp, err := provider.Translate(ctx, &providers.Request{Text: text, Model: req.Model})
	if err != nil {
		if IsOversized(err) {
			// 超长输入直接失败，不进入mock回退
			return nil, err
		}

		s.options.logger.Warn("translation failed, falling back to mock",
			zap.String("model", string(req.Model)),
			zap.Error(err))

		fallback := mock.Translate(text, req.Model) + mock.FallbackNote(err.Error())
		return s.result(fallback, req.Model, true, err.Error(), start), nil
	}

	return s.result(resp.Text, req.Model, false, "", start), nil
}

// result 构造不可变的翻译结果，记录墙钟延迟
func (s *Service) result(text string, id models.ID, degraded bool, reason string, start time.Time) *Result {
	now := s.options.now()

	latency := now.Sub(start).Milliseconds()
	if latency < 0 {
		latency = 0
	}

	return &Result{
		ID:        uuid.New().String(),
		Text:      text,
		Model:     id,
		Degraded:  degraded,
		Reason:    reason,
		LatencyMs: latency,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
