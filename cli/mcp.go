package cli

import (
	"github.com/spf13/cobra"

	"github.com/ByLCY/designkit/mcpserver"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the layout tools over MCP (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return mcpserver.New(Version, app.log).ServeStdio()
		},
	}
}
