// Package csvio 实现批量翻译的CSV导入导出。
// 导入至少需要 S.No 和 English 两列；导出为每个选定模型追加
// Spanish-{Label} 和 Latency-{Label} (ms) 两列。
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/translation"
)

// 必需的导入列
const (
	ColumnSequence = "S.No"
	ColumnEnglish  = "English"
)

// 预定义错误
var (
	// ErrEmptyFile CSV文件为空
	ErrEmptyFile = errors.New("csv file is empty")

	// ErrNoDataRows 只有表头没有数据行
	ErrNoDataRows = errors.New("csv file has no data rows")
)

// Row 一条导入行
type Row struct {
	// SequenceNumber 序号，从1开始
	SequenceNumber int

	// English 英文源文本
	English string
}

// ParseRows 解析导入CSV。缺少必需列或文件为空时在任何翻译开始前失败，
// 以单条用户可见消息呈现。
func ParseRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	seqIdx, engIdx := -1, -1
	for i, name := range records[0] {
		switch {
		case headerEquals(name, ColumnSequence):
			seqIdx = i
		case headerEquals(name, ColumnEnglish):
			engIdx = i
		}
	}
	if seqIdx < 0 || engIdx < 0 {
		return nil, fmt.Errorf("csv must contain %q and %q columns", ColumnSequence, ColumnEnglish)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if engIdx >= len(record) {
			continue
		}

		english := strings.TrimSpace(record[engIdx])
		if english == "" {
			continue
		}

		seq := i + 1
		if seqIdx < len(record) {
			if n, err := strconv.Atoi(strings.TrimSpace(record[seqIdx])); err == nil && n > 0 {
				seq = n
			}
		}

		rows = append(rows, Row{SequenceNumber: seq, English: english})
	}

	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}

	return rows, nil
}

// headerEquals 列名比较，忽略大小写和首尾空白（含BOM）
func headerEquals(name, want string) bool {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	return strings.EqualFold(name, want)
}

// Texts 提取源文本序列（保留原始行顺序，可能含重复）
func Texts(rows []Row) []string {
	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.English
	}
	return texts
}

// WriteResults 导出翻译结果。按原始（未去重）行顺序重组，
// 通过批量结果的去重文本映射取回各模型译文。
func WriteResults(w io.Writer, rows []Row, ids []models.ID, batch *translation.BatchResult) error {
	writer := csv.NewWriter(w)

	header := []string{ColumnSequence, ColumnEnglish}
	for _, id := range ids {
		header = append(header, "Spanish-"+models.Label(id))
	}
	for _, id := range ids {
		header = append(header, fmt.Sprintf("Latency-%s (ms)", models.Label(id)))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{strconv.Itoa(row.SequenceNumber), row.English}

		item, ok := batch.Lookup(row.English)
		for _, id := range ids {
			if !ok {
				record = append(record, row.English)
				continue
			}
			record = append(record, item.Translations[id])
		}
		for _, id := range ids {
			if !ok {
				record = append(record, "0")
				continue
			}
			latency := int64(0)
			if res := item.Results[id]; res != nil {
				latency = res.LatencyMs
			}
			record = append(record, strconv.FormatInt(latency, 10))
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
