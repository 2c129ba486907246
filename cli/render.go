package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ByLCY/designkit/config"
	"github.com/ByLCY/designkit/dsl"
	"github.com/ByLCY/designkit/studio"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	intentOpts := &intentFlags{}
	outOpts := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "render [file.design]",
		Short: "Render a design offline from flags or a .design file",
		Long: "Render a design without the text-generation service. With a .design file the intent,\n" +
			"frame size, copy and abstract elements come from the file; otherwise from the flags.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req studio.Request
			var err error
			if len(args) == 1 {
				req, err = requestFromFile(args[0])
			} else {
				req, err = requestFromFlags(intentOpts)
			}
			if err != nil {
				return err
			}
			if req.Data, err = loadData(outOpts.data, outOpts.dataFile); err != nil {
				return err
			}

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			host, err := app.newHost(fmt.Sprintf("Design %s", req.Intent.Type))
			if err != nil {
				return err
			}
			out, err := app.service(host).Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			return finish(cmd, app, host, req.Intent, out, outOpts)
		},
	}

	intentOpts.register(cmd.Flags())
	outOpts.register(cmd.Flags())
	return cmd
}

func requestFromFlags(f *intentFlags) (studio.Request, error) {
	intent, err := f.intent()
	if err != nil {
		return studio.Request{}, err
	}
	return studio.Request{Intent: intent, Width: f.width, Height: f.height}, nil
}

func requestFromFile(path string) (studio.Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return studio.Request{}, fmt.Errorf("无法打开设计文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return studio.Request{}, fmt.Errorf("解析设计文件失败: %w", err)
	}
	intent, err := doc.Intent()
	if err != nil {
		return studio.Request{}, err
	}
	intent = withIntentDefaults(intent)
	if err := config.ValidateIntent(intent); err != nil {
		return studio.Request{}, err
	}
	opts, err := doc.Options()
	if err != nil {
		return studio.Request{}, err
	}
	w, h := doc.FrameSize()
	return studio.Request{
		Intent:   intent,
		Options:  opts,
		Width:    w,
		Height:   h,
		Elements: doc.Elements(),
	}, nil
}
