package layout

// ResolveStyle 返回风格对应的间距参数；未识别的风格使用 minimal 的取值。
func ResolveStyle(style Style) StyleProfile {
	switch style {
	case StyleModern:
		return StyleProfile{Padding: 32, Gap: 24, BorderRadius: 8, ShadowBlur: 16}
	case StyleClassic:
		return StyleProfile{Padding: 40, Gap: 32, BorderRadius: 0, ShadowBlur: 8}
	default:
		return StyleProfile{Padding: 24, Gap: 16, BorderRadius: 4, ShadowBlur: 0}
	}
}
