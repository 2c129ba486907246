package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将合成结果输出为 JSON，便于调试或对比。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Compose 解析配色与样式后调用 Synthesize，返回完整的合成结果。
func Compose(frame Frame, intent Intent, opts Options) *Result {
	palette := ResolvePalette(intent.ColorScheme)
	profile := ResolveStyle(intent.Style)
	return &Result{
		Intent:   intent,
		Frame:    frame,
		Palette:  palette,
		Profile:  profile,
		Elements: SynthesizeWithOptions(frame, intent, palette, profile, opts),
	}
}
