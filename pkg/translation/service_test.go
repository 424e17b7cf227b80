package translation_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/providers"
	"github.com/esparza-dev/traductor/pkg/translation"
)

// fakeProvider 可编程的测试提供商
type fakeProvider struct {
	name       string
	configured bool
	calls      int
	translate  func(ctx context.Context, req *providers.Request) (*providers.Response, error)
}

var _ providers.Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Translate(ctx context.Context, req *providers.Request) (*providers.Response, error) {
	f.calls++
	return f.translate(ctx, req)
}

func (f *fakeProvider) GetName() string  { return f.name }
func (f *fakeProvider) Configured() bool { return f.configured }

// newService 创建注册了单个fake提供商的服务
func newService(t *testing.T, id models.ID, fake *fakeProvider, opts ...translation.Option) *translation.Service {
	t.Helper()

	registry := providers.NewRegistry()
	if fake != nil {
		require.NoError(t, registry.Register(id, fake))
	}

	svc, err := translation.New(registry, opts...)
	require.NoError(t, err)
	return svc
}

func TestTranslateSuccess(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			return &providers.Response{Text: "Hola, mundo!"}, nil
		},
	}
	svc := newService(t, models.GPT41, fake)

	res, err := svc.Translate(context.Background(), &translation.Request{
		Text:  "Hello, world!",
		Model: models.GPT41,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hola, mundo!", res.Text)
	assert.Equal(t, models.GPT41, res.Model)
	assert.False(t, res.Degraded)
	assert.Empty(t, res.Reason)
	assert.NotEmpty(t, res.ID)
	assert.GreaterOrEqual(t, res.LatencyMs, int64(0))

	_, err = time.Parse(time.RFC3339, res.Timestamp)
	assert.NoError(t, err, "timestamp should be RFC3339")
}

// TestTranslateUnconfigured 未配置凭证直接走mock，不附加失败说明
func TestTranslateUnconfigured(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: false,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			t.Fatal("unconfigured provider must not be called")
			return nil, nil
		},
	}
	svc := newService(t, models.GPT41, fake)

	res, err := svc.Translate(context.Background(), &translation.Request{
		Text:  "water",
		Model: models.GPT41,
	})

	require.NoError(t, err)
	assert.Equal(t, "agua (translated with GPT-4.1)", res.Text)
	assert.True(t, res.Degraded)
	assert.Equal(t, "credentials not configured", res.Reason)
	assert.NotContains(t, res.Text, "API call failed")
	assert.Zero(t, fake.calls)
}

// TestTranslateNoProviderRegistered 未注册提供商等同未配置
func TestTranslateNoProviderRegistered(t *testing.T) {
	svc := newService(t, models.GPT41, nil)

	res, err := svc.Translate(context.Background(), &translation.Request{
		Text:  "hello",
		Model: models.GPT41,
	})

	require.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.Equal(t, "credentials not configured", res.Reason)
}

// TestTranslateFallbackOnFailure 真实调用失败时返回带失败说明的mock译文
func TestTranslateFallbackOnFailure(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			return nil, providers.ClassifyStatus(401, "")
		},
	}
	svc := newService(t, models.GPT41, fake)

	res, err := svc.Translate(context.Background(), &translation.Request{
		Text:  "water",
		Model: models.GPT41,
	})

	require.NoError(t, err, "provider failure must not surface as an error")
	assert.True(t, res.Degraded)
	assert.True(t, strings.HasPrefix(res.Text, "agua (translated with GPT-4.1)"))
	assert.Contains(t, res.Text, "API call failed")
	assert.Contains(t, res.Text, "authentication_failed")
	assert.Contains(t, res.Reason, "authentication_failed")
}

// TestTranslateOversizedPassthrough 超长输入的预检错误原样抛出，不走mock
func TestTranslateOversizedPassthrough(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			return nil, providers.NewError(providers.ErrCodeOversized, "input exceeds 2500 token limit")
		},
	}
	svc := newService(t, models.O4Mini, fake)

	_, err := svc.Translate(context.Background(), &translation.Request{
		Text:  "very long text",
		Model: models.O4Mini,
	})

	require.Error(t, err)
	assert.True(t, translation.IsOversized(err))
}

func TestTranslateValidation(t *testing.T) {
	svc := newService(t, models.GPT41, nil)

	tests := []struct {
		name    string
		req     *translation.Request
		wantErr error
	}{
		{"nil request", nil, translation.ErrEmptyText},
		{"empty text", &translation.Request{Text: "", Model: models.GPT41}, translation.ErrEmptyText},
		{"whitespace only", &translation.Request{Text: "   \t\n", Model: models.GPT41}, translation.ErrEmptyText},
		{"unknown model", &translation.Request{Text: "hello", Model: "gpt-99"}, translation.ErrUnknownModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Translate(context.Background(), tt.req)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

// TestTranslateLatencyFromClock 延迟来自注入的时钟
func TestTranslateLatencyFromClock(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ticks := 0
	clock := func() time.Time {
		// 每次读取前进250ms
		now := base.Add(time.Duration(ticks) * 250 * time.Millisecond)
		ticks++
		return now
	}

	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			return &providers.Response{Text: "hola"}, nil
		},
	}
	svc := newService(t, models.GPT41, fake, translation.WithClock(clock))

	res, err := svc.Translate(context.Background(), &translation.Request{
		Text:  "hello",
		Model: models.GPT41,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(250), res.LatencyMs)
}
