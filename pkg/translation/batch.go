package translation

import (
	"context"

	"go.uber.org/zap"

	"github.com/esparza-dev/traductor/pkg/models"
)

// TranslateBatch 批量翻译。去重后的每个文本对每个选定模型顺序调用，
// 绝不并发，以规避提供商限流。单项失败不会中止整个批次。
func (s *Service) TranslateBatch(ctx context.Context, texts []string, ids []models.ID) (*BatchResult, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}
	if len(ids) == 0 {
		return nil, ErrNoModels
	}
	for _, id := range ids {
		if !models.IsValid(id) {
			return nil, ErrUnknownModel
		}
	}

	unique := dedupe(texts)
	total := len(unique)

	s.options.logger.Info("starting batch translation",
		zap.Int("rows", len(texts)),
		zap.Int("unique", total),
		zap.Int("models", len(ids)))

	batch := &BatchResult{
		Items: make([]BatchItem, 0, total),
		index: make(map[string]int, total),
	}

	for i, text := range unique {
		item := BatchItem{
			SequenceNumber: i + 1,
			SourceText:     text,
			Translations:   make(map[models.ID]string, len(ids)),
			Results:        make(map[models.ID]*Result, len(ids)),
		}

		for _, id := range ids {
			res, err := s.Translate(ctx, &Request{Text: text, Model: id})
			if err != nil {
				// 编排级失败：以原文充当译文并继续
				s.options.logger.Warn("batch item failed, substituting source text",
					zap.String("model", string(id)),
					zap.Error(err))
				res = s.result(text, id, true, err.Error(), s.options.now())
			}

			item.Translations[id] = res.Text
			item.Results[id] = res
		}

		batch.index[text] = len(batch.Items)
		batch.Items = append(batch.Items, item)

		if s.options.progressCallback != nil {
			s.options.progressCallback(&Progress{
				Total:     total,
				Completed: i + 1,
				Fraction:  float64(i+1) / float64(total),
				Current:   text,
			})
		}
	}

	return batch, nil
}

// dedupe 按内容去重，保留首次出现顺序
func dedupe(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	unique := make([]string, 0, len(texts))

	for _, t := range texts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}

	return unique
}
