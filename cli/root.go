package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X github.com/ByLCY/designkit/cli.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootOptions struct {
	configFile string
}

// NewRootCmd 创建 designkit 命令树。
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "designkit",
		Short:         "designkit turns a design intent into positioned shapes and text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "配置文件路径（默认查找 ./designkit.yaml）")
	pf.String("endpoint", "", "生成服务地址")
	pf.String("model", "", "生成模型")
	pf.Float64("temperature", 0, "生成温度")
	pf.Int("max-tokens", 0, "最大输出 token 数")
	pf.Duration("timeout", time.Duration(0), "生成请求超时")
	pf.String("credential-backend", "", "凭据后端：file 或 keychain")
	pf.String("credential-path", "", "file 后端的凭据文件")
	pf.String("out-dir", "", "输出目录")
	pf.String("format", "", "输出格式：pdf 或 svg")
	pf.String("source", "", "元素来源：auto、template 或 ai")
	pf.String("log-level", "", "日志级别")
	pf.Bool("log-human", true, "输出便于阅读的日志")
	pf.String("theme", "", "初始主题：light 或 dark")
	pf.String("theme-file", "", "监听主题变化的文件")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newSettingsCmd(opts))
	cmd.AddCommand(newUICmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
