package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newSettingsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the stored API key",
	}
	cmd.AddCommand(newSetKeyCmd(root), newShowSettingsCmd(root), newClearKeyCmd(root))
	return cmd
}

func newSetKeyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [key]",
		Short: "Store the API key (prompted when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			key := ""
			if len(args) == 1 {
				key = args[0]
			} else if key, err = readKey(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
				return err
			}
			if strings.TrimSpace(key) == "" {
				return errors.New("API key 不能为空")
			}
			if err := app.keys.Save(key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key saved (%s)\n", app.keys.Masked())
			return nil
		},
	}
}

func newShowSettingsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			cfg := app.cfg
			key := app.keys.Masked()
			if key == "" {
				key = "(not set)"
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "api key:    %s\n", key)
			fmt.Fprintf(w, "backend:    %s\n", cfg.Credential.Backend)
			if cfg.Credential.Backend == "file" {
				fmt.Fprintf(w, "path:       %s\n", cfg.Credential.Path)
			}
			fmt.Fprintf(w, "endpoint:   %s\n", cfg.API.Endpoint)
			fmt.Fprintf(w, "model:      %s\n", cfg.API.Model)
			fmt.Fprintf(w, "source:     %s\n", cfg.Layout.Source)
			fmt.Fprintf(w, "output:     %s (%s)\n", cfg.Output.Dir, cfg.Output.Format)
			return nil
		},
	}
}

func newClearKeyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			if err := app.keys.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return nil
		},
	}
}

// readKey 在终端上不回显地读取 key，否则读取第一行输入。
func readKey(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "API key: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("读取 API key 失败: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("读取 API key 失败: %w", err)
	}
	return strings.TrimSpace(line), nil
}
