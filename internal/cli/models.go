package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/esparza-dev/traductor/pkg/models"
)

// newModelsCommand 创建模型列表子命令
func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "列出支持的翻译模型",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Label", "Family", "Deployment", "API Version"})

			for _, id := range models.All() {
				deployment, apiVersion := "-", "-"
				if cfg, ok := models.Resolve(id); ok {
					deployment = cfg.DeploymentName
					apiVersion = cfg.APIVersion
				}
				t.AppendRow(table.Row{string(id), models.Label(id), models.FamilyOf(id).String(), deployment, apiVersion})
			}

			t.Render()
		},
	}
}
