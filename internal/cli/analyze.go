package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/esparza-dev/traductor/internal/analyzer"
)

// newAnalyzeCommand 创建性能分析子命令
func newAnalyzeCommand() *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "analyze <translated.csv>",
		Short: "分析导出CSV中各模型的翻译质量和延迟",
		Long: `以参考模型列为基准，对导出CSV中的每个 Spanish-{Label} 列计算BLEU分数、
平均延迟、成功率和效率（BLEU/延迟秒数），并打印分类报告。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			analysis, err := analyzer.AnalyzeCSV(file, reference)
			if err != nil {
				return err
			}

			analyzer.Report(analysis)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reference, "reference", "r", analyzer.DefaultReference, "参考模型标签")

	return cmd
}
