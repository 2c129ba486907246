package binding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/ByLCY/designkit/adapter"
	"github.com/ByLCY/designkit/layout"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 若 data 为空或路径不存在，则返回原占位符。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		path := strings.TrimSpace(groups[1])
		if path == "" {
			return match
		}
		val, ok := resolvePath(data, path)
		if !ok {
			return match
		}
		s, err := cast.ToStringE(val)
		if err != nil {
			return match
		}
		return s
	})
}

// Elements 对文本元素的 Content 做插值，返回新的切片。
func Elements(elements []layout.Element, data any) []layout.Element {
	out := make([]layout.Element, len(elements))
	for i, el := range elements {
		if el.Kind == layout.KindText {
			el.Content = Interpolate(el.Content, data)
		}
		out[i] = el
	}
	return out
}

// Abstract 对抽象元素中所有字符串属性做插值，不修改输入。
func Abstract(elements []adapter.AbstractElement, data any) []adapter.AbstractElement {
	out := make([]adapter.AbstractElement, len(elements))
	for i, el := range elements {
		props := make(map[string]any, len(el.Properties))
		for k, v := range el.Properties {
			if s, ok := v.(string); ok {
				v = Interpolate(s, data)
			}
			props[k] = v
		}
		out[i] = adapter.AbstractElement{Type: el.Type, Properties: props}
	}
	return out
}

// step 是路径中的一级：Key 非空时按键下钻，否则按 Index 取数组元素。
type step struct {
	Key   string
	Index int
}

// parsePath 把 "user.items[0].name" 切分为逐级访问的步骤。
func parsePath(path string) ([]step, bool) {
	var steps []step
	for _, part := range strings.Split(path, ".") {
		key, rest, _ := strings.Cut(part, "[")
		if key != "" {
			steps = append(steps, step{Key: key})
		}
		for rest != "" {
			idx, tail, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, false
			}
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 {
				return nil, false
			}
			steps = append(steps, step{Index: n})
			rest = strings.TrimPrefix(tail, "[")
		}
	}
	return steps, len(steps) > 0
}

// resolvePath 逐级访问 data；map 同时接受 JSON 与 YAML 解码的形式。
func resolvePath(data any, path string) (any, bool) {
	steps, ok := parsePath(path)
	if !ok {
		return nil, false
	}
	current := data
	for _, st := range steps {
		if st.Key != "" {
			m, err := cast.ToStringMapE(current)
			if err != nil {
				return nil, false
			}
			if current, ok = m[st.Key]; !ok {
				return nil, false
			}
			continue
		}
		list, err := cast.ToSliceE(current)
		if err != nil || st.Index >= len(list) {
			return nil, false
		}
		current = list[st.Index]
	}
	return current, true
}
