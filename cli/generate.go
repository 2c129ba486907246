package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/designkit/aigen"
	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/renderer"
	"github.com/ByLCY/designkit/studio"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	intentOpts := &intentFlags{}
	outOpts := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a design with the text-generation service and export it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			intent, err := intentOpts.intent()
			if err != nil {
				return err
			}
			data, err := loadData(outOpts.data, outOpts.dataFile)
			if err != nil {
				return err
			}
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}

			host, err := app.newHost(fmt.Sprintf("AI Generated %s", intent.Type))
			if err != nil {
				return err
			}
			out, err := app.service(host).Generate(cmd.Context(), studio.Request{
				Intent: intent,
				Width:  intentOpts.width,
				Height: intentOpts.height,
				Data:   data,
			})
			if errors.Is(err, aigen.ErrMissingCredential) {
				return fmt.Errorf("%w，请先运行 designkit settings set-key", err)
			}
			if err != nil {
				return err
			}
			return finish(cmd, app, host, intent, out, outOpts)
		},
	}

	intentOpts.register(cmd.Flags())
	outOpts.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// finish 导出文件并按需输出调试 JSON 与元素表格。
func finish(cmd *cobra.Command, app *appContext, host renderer.Exporter, intent layout.Intent, out *studio.Outcome, opts *outputFlags) error {
	path, err := app.export(host, intent, opts.out)
	if err != nil {
		return err
	}
	if opts.debug != "" {
		if err := layout.WriteDebugJSON(out.Result(intent), opts.debug); err != nil {
			return fmt.Errorf("写入调试 JSON 失败: %w", err)
		}
	}
	w := cmd.OutOrStdout()
	if opts.table {
		renderElementTable(w, out.Elements)
	}
	fmt.Fprintf(w, "已生成 %s：%s\n", app.cfg.Output.Format, path)
	return nil
}
