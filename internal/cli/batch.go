package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/esparza-dev/traductor/internal/csvio"
	"github.com/esparza-dev/traductor/pkg/translation"
)

// newBatchCommand 创建批量翻译子命令
func newBatchCommand() *cobra.Command {
	var (
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "从CSV批量翻译",
		Long: `读取含 S.No 和 English 列的CSV，对每个去重后的文本顺序调用所有选定模型，
结果按原始行顺序写出，每个模型追加 Spanish-{Label} 和 Latency-{Label} (ms) 两列。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ids, err := parseModels(modelFlags)
			if err != nil {
				return err
			}

			input, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			defer input.Close()

			// CSV解析失败在任何翻译开始前中止
			rows, err := csvio.ParseRows(input)
			if err != nil {
				return err
			}

			bar := newProgressBar(os.Stderr)
			svc, err := translation.New(buildRegistry(cfg, log),
				translation.WithLogger(log),
				translation.WithProgressCallback(bar.Update),
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stderr, cfg.Status())

			batch, err := svc.TranslateBatch(cmd.Context(), csvio.Texts(rows), ids)
			bar.Finish()
			if err != nil {
				return err
			}

			output, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer output.Close()

			if err := csvio.WriteResults(output, rows, ids, batch); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "translated %d rows (%d unique) with %d models -> %s\n",
				len(rows), len(batch.Items), len(ids), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "输入CSV路径")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "输出CSV路径")
	cmd.Flags().StringSliceVarP(&modelFlags, "model", "m", modelFlags, "目标模型（可重复）")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
