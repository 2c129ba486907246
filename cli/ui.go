package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/designkit/studio"
	"github.com/ByLCY/designkit/themebridge"
	"github.com/ByLCY/designkit/tui"
)

func newUICmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive design generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			bridge := themebridge.New(app.cfg.Theme.Initial, app.log)
			if file := app.cfg.Theme.File; file != "" {
				go func() {
					if err := bridge.Watch(ctx, file); err != nil {
						app.log.Error(err, "theme watcher stopped")
					}
				}()
			}

			generate := func(ctx context.Context, req studio.Request) (*studio.Outcome, error) {
				host, err := app.newHost(fmt.Sprintf("AI Generated %s", req.Intent.Type))
				if err != nil {
					return nil, err
				}
				out, err := app.service(host).Generate(ctx, req)
				if err != nil {
					return nil, err
				}
				path, err := app.export(host, req.Intent, "")
				if err != nil {
					return nil, err
				}
				app.log.WithFields(map[string]any{"path": path}).Info("design exported")
				return out, nil
			}
			return tui.Run(ctx, generate, app.keys, bridge)
		},
	}
}
