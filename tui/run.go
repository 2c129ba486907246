package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ByLCY/designkit/themebridge"
)

// Run 启动界面并阻塞到退出。bridge 非空时主题变化会推送给界面。
func Run(ctx context.Context, generate GenerateFunc, keys KeyStore, bridge *themebridge.Bridge) error {
	theme := themebridge.Light
	if bridge != nil {
		theme = bridge.Current()
	}
	p := tea.NewProgram(NewModel(ctx, generate, keys, theme), tea.WithAltScreen(), tea.WithContext(ctx))
	if bridge != nil {
		unsubscribe := bridge.Subscribe(func(theme string) {
			p.Send(ThemeMsg{Theme: theme})
		})
		defer unsubscribe()
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("运行界面失败: %w", err)
	}
	return nil
}
