package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/esparza-dev/traductor/internal/config"
	"github.com/esparza-dev/traductor/internal/logger"
	"github.com/esparza-dev/traductor/pkg/models"
	"github.com/esparza-dev/traductor/pkg/translation"
)

var (
	// 命令行标志变量
	cfgFile    string
	modelFlags []string
	debugMode  bool
	showStatus bool
)

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traductor [flags] \"text to translate\"",
		Short: "traductor 是一个英译西多模型翻译工具",
		Long: `traductor 将英文文本翻译为西班牙文，支持多个托管LLM部署和专用机器翻译服务。
未配置凭证时以demo模式运行，返回可明显区分的mock译文。

支持的模型:
  - gpt-4.1          标准GPT-4.1部署
  - gpt-4.1-mini     轻量级部署
  - o4-mini          推理模型受限变体
  - gpt-5-chat       完整对话变体
  - deepseek-v3      第三方厂商模型（AI Foundry）
  - azure-translator 专用机器翻译服务`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if showStatus {
				fmt.Println(cfg.Status())
				return nil
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			return runTranslate(cmd, cfg, log, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径（默认查找 .traductor.yaml）")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "启用调试日志")
	rootCmd.Flags().StringSliceVarP(&modelFlags, "model", "m", []string{string(models.GPT41)}, "目标模型（可重复）")
	rootCmd.Flags().BoolVar(&showStatus, "status", false, "显示配置状态后退出")

	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newModelsCommand())

	return rootCmd
}

// setup 加载配置并初始化日志
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLogger(debugMode || cfg.Debug)
	return cfg, log, nil
}

// parseModels 解析模型标志
func parseModels(flags []string) ([]models.ID, error) {
	ids := make([]models.ID, 0, len(flags))
	for _, f := range flags {
		id, ok := models.Parse(strings.TrimSpace(f))
		if !ok {
			return nil, fmt.Errorf("unknown model %q, run 'traductor models' to list supported models", f)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// runTranslate 单文本翻译
func runTranslate(cmd *cobra.Command, cfg *config.Config, log *zap.Logger, text string) error {
	ids, err := parseModels(modelFlags)
	if err != nil {
		return err
	}

	svc, err := translation.New(buildRegistry(cfg, log), translation.WithLogger(log))
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, cfg.Status())

	for _, id := range ids {
		res, err := svc.Translate(cmd.Context(), &translation.Request{Text: text, Model: id})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s", models.Label(id), res.Text)
		if res.Degraded {
			fmt.Printf("  (degraded: %s)", res.Reason)
		}
		fmt.Printf("  [%dms]\n", res.LatencyMs)
	}

	return nil
}
