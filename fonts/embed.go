package fonts

import (
	"fmt"
	"strings"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// 内置字体名称。
const (
	Regular = "sans-regular"
	Bold    = "sans-bold"
	Oblique = "sans-oblique"
)

var builtin = map[string][]byte{
	Regular: lmsans10regular.TTF,
	Bold:    lmsans10bold.TTF,
	Oblique: lmsans10oblique.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:sans-bold" 或直接 "sans-bold"。
func Load(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "embed:")
	data, ok := builtin[name]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 未找到", name)
	}
	return data, nil
}

// ForWeight 把元素的字重映射为内置字体名称。
func ForWeight(weight string) string {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "bold", "semibold", "extrabold", "black", "600", "700", "800", "900":
		return Bold
	case "italic", "oblique":
		return Oblique
	default:
		return Regular
	}
}
