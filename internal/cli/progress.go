package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/esparza-dev/traductor/pkg/translation"
)

// progressBar 批量翻译的终端进度条
type progressBar struct {
	writer   io.Writer
	barWidth int
	active   bool
}

// newProgressBar 创建进度条
func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{
		writer:   w,
		barWidth: 30,
	}
}

// Update 渲染一次进度
func (b *progressBar) Update(p *translation.Progress) {
	filled := int(p.Fraction * float64(b.barWidth))
	if filled > b.barWidth {
		filled = b.barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", b.barWidth-filled)

	fmt.Fprintf(b.writer, "\r%s [%s] %s (%d/%d)",
		text.FgCyan.Sprint("translating"),
		text.Colors{text.FgCyan}.Sprint(bar),
		text.FgHiWhite.Sprintf("%.1f%%", p.Fraction*100),
		p.Completed, p.Total)

	b.active = true
}

// Finish 结束进度条（换行）
func (b *progressBar) Finish() {
	if b.active {
		fmt.Fprintln(b.writer)
		b.active = false
	}
}
