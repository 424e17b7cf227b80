package translation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/providers"
	"github.com/esparza-dev/traductor/pkg/translation"
)

// TestTranslateBatchDedupe 重复文本只翻译一次，保留首次出现顺序
func TestTranslateBatchDedupe(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			return &providers.Response{Text: "es:" + req.Text}, nil
		},
	}
	svc := newService(t, models.GPT41, fake)

	batch, err := svc.TranslateBatch(context.Background(),
		[]string{"Hi", "Hi", "Bye"}, []models.ID{models.GPT41})

	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls, "duplicate text must be translated once")

	require.Len(t, batch.Items, 2)
	assert.Equal(t, "Hi", batch.Items[0].SourceText)
	assert.Equal(t, "Bye", batch.Items[1].SourceText)
	assert.Equal(t, 1, batch.Items[0].SequenceNumber)
	assert.Equal(t, 2, batch.Items[1].SequenceNumber)

	// 重组：原始3行都能通过Lookup取回
	for _, source := range []string{"Hi", "Hi", "Bye"} {
		item, ok := batch.Lookup(source)
		require.True(t, ok, "lookup %q", source)
		assert.Equal(t, "es:"+source, item.Translations[models.GPT41])
	}
}

// TestTranslateBatchMultipleModels 每个去重文本对每个模型各调用一次
func TestTranslateBatchMultipleModels(t *testing.T) {
	registry := providers.NewRegistry()
	byModel := map[models.ID]*fakeProvider{}

	for _, id := range []models.ID{models.GPT41, models.GPT41Mini} {
		fake := &fakeProvider{
			name:       string(id),
			configured: true,
			translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
				return &providers.Response{Text: fmt.Sprintf("%s:%s", req.Model, req.Text)}, nil
			},
		}
		byModel[id] = fake
		require.NoError(t, registry.Register(id, fake))
	}

	svc, err := translation.New(registry)
	require.NoError(t, err)

	batch, err := svc.TranslateBatch(context.Background(),
		[]string{"one", "two"}, []models.ID{models.GPT41, models.GPT41Mini})

	require.NoError(t, err)
	assert.Equal(t, 2, byModel[models.GPT41].calls)
	assert.Equal(t, 2, byModel[models.GPT41Mini].calls)

	item, ok := batch.Lookup("one")
	require.True(t, ok)
	assert.Equal(t, "gpt-4.1:one", item.Translations[models.GPT41])
	assert.Equal(t, "gpt-4.1-mini:one", item.Translations[models.GPT41Mini])
	assert.False(t, item.Results[models.GPT41].Degraded)
}

// TestTranslateBatchProgress 进度单调递增，最后一条恰好为1.0
func TestTranslateBatchProgress(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			return &providers.Response{Text: "hola"}, nil
		},
	}

	var updates []*translation.Progress
	svc := newService(t, models.GPT41, fake,
		translation.WithProgressCallback(func(p *translation.Progress) {
			updates = append(updates, p)
		}))

	_, err := svc.TranslateBatch(context.Background(),
		[]string{"a", "b", "c", "b"}, []models.ID{models.GPT41})
	require.NoError(t, err)

	require.Len(t, updates, 3, "one update per unique text")

	prev := 0.0
	for i, p := range updates {
		assert.Equal(t, 3, p.Total)
		assert.Equal(t, i+1, p.Completed)
		assert.Greater(t, p.Fraction, prev, "fraction must be monotonic")
		prev = p.Fraction
	}
	assert.Equal(t, 1.0, updates[len(updates)-1].Fraction)
	assert.Equal(t, "c", updates[len(updates)-1].Current)
}

// TestTranslateBatchItemFailure 单项编排级失败以原文充当译文并继续
func TestTranslateBatchItemFailure(t *testing.T) {
	fake := &fakeProvider{
		name:       "azure-openai",
		configured: true,
		translate: func(ctx context.Context, req *providers.Request) (*providers.Response, error) {
			if req.Text == "too long" {
				return nil, providers.NewError(providers.ErrCodeOversized, "input exceeds 2500 token limit")
			}
			return &providers.Response{Text: "hola"}, nil
		},
	}
	svc := newService(t, models.O4Mini, fake)

	batch, err := svc.TranslateBatch(context.Background(),
		[]string{"fine", "too long", "also fine"}, []models.ID{models.O4Mini})

	require.NoError(t, err, "item failure must not abort the batch")
	require.Len(t, batch.Items, 3)

	failed, ok := batch.Lookup("too long")
	require.True(t, ok)
	assert.Equal(t, "too long", failed.Translations[models.O4Mini], "source text substitutes the translation")
	assert.True(t, failed.Results[models.O4Mini].Degraded)
	assert.Contains(t, failed.Results[models.O4Mini].Reason, "input_too_large")

	good, ok := batch.Lookup("also fine")
	require.True(t, ok)
	assert.Equal(t, "hola", good.Translations[models.O4Mini])
}

func TestTranslateBatchValidation(t *testing.T) {
	svc := newService(t, models.GPT41, nil)

	_, err := svc.TranslateBatch(context.Background(), nil, []models.ID{models.GPT41})
	assert.ErrorIs(t, err, translation.ErrNoTexts)

	_, err = svc.TranslateBatch(context.Background(), []string{"hello"}, nil)
	assert.ErrorIs(t, err, translation.ErrNoModels)

	_, err = svc.TranslateBatch(context.Background(), []string{"hello"}, []models.ID{"gpt-99"})
	assert.ErrorIs(t, err, translation.ErrUnknownModel)
}
