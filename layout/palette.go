package layout

// ResolvePalette 将配色方案映射为固定的四色方案。
// 未识别的方案回退到 light，这是有意的默认分支而不是错误。
func ResolvePalette(scheme ColorScheme) Palette {
	switch scheme {
	case SchemeDark:
		return Palette{
			Primary:    "#3b82f6",
			Background: "#111827",
			Text:       "#f3f4f6",
			Accent:     "#60a5fa",
		}
	case SchemeColorful:
		return Palette{
			Primary:    "#8b5cf6",
			Background: "#ffffff",
			Text:       "#1f2937",
			Accent:     "#ec4899",
		}
	case SchemeLight:
		fallthrough
	default:
		return Palette{
			Primary:    "#2563eb",
			Background: "#ffffff",
			Text:       "#1f2937",
			Accent:     "#3b82f6",
		}
	}
}
