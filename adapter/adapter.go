package adapter

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/ByLCY/designkit/layout"
)

// 该文件把外部生成器给出的抽象元素（松散类型的属性表）规范化为 layout.Element。

// Abstract element kinds understood by Adapt.
const (
	KindContainer = "container"
	KindText      = "text"
	KindButton    = "button"
)

const (
	containerHeight = 100.0
	textWidth       = 200.0
	textHeight      = 40.0
	textFontSize    = 16.0
	buttonWidth     = 120.0
	buttonHeight    = 40.0
	buttonLabel     = "Button"
	buttonFontSize  = 16.0
)

// AbstractElement 是外部生成器给出的元素描述，Properties 的值类型不受约束。
type AbstractElement struct {
	Type       string         `json:"type" mapstructure:"type"`
	Properties map[string]any `json:"properties,omitempty" mapstructure:"properties"`
}

// Adapt 按输入顺序把抽象元素转换为元素记录。
//
// 默认值遵循 "真值才覆盖" 的规则：属性存在但为 0、空字符串或 false 时视为缺省，
// 因此无法通过属性显式得到 0 坐标以外的零值。未知类型直接跳过。
func Adapt(elements []AbstractElement, profile layout.StyleProfile, frame layout.Frame, palette layout.Palette) []layout.Element {
	out := make([]layout.Element, 0, len(elements))
	for _, el := range elements {
		props := bag(el.Properties)
		switch el.Type {
		case KindContainer:
			out = append(out, adaptContainer(props, frame, palette))
		case KindText:
			out = append(out, adaptText(props, palette))
		case KindButton:
			out = append(out, adaptButton(props, profile, palette)...)
		}
	}
	return out
}

func adaptContainer(props bag, frame layout.Frame, palette layout.Palette) layout.Element {
	return layout.Element{
		Kind:         layout.KindRectangle,
		X:            props.number(0, "x"),
		Y:            props.number(0, "y"),
		Width:        props.number(frame.Width, "width"),
		Height:       props.number(containerHeight, "height"),
		Fill:         props.str(palette.Background, "fill", "backgroundColor", "color"),
		CornerRadius: props.number(0, "borderRadius", "cornerRadius"),
		ShadowBlur:   props.number(0, "shadowBlur"),
	}
}

func adaptText(props bag, palette layout.Palette) layout.Element {
	return layout.Element{
		Kind:       layout.KindText,
		X:          props.number(0, "x"),
		Y:          props.number(0, "y"),
		Width:      props.number(textWidth, "width"),
		Height:     props.number(textHeight, "height"),
		Fill:       props.str(palette.Text, "fill", "color"),
		Content:    props.str("", "content", "text", "label"),
		FontSize:   props.number(textFontSize, "fontSize"),
		FontWeight: props.str(layout.WeightNormal, "fontWeight"),
		Align:      props.str("", "align", "textAlign"),
	}
}

// adaptButton 输出矩形和紧随其后的标签；标签按 padding 内缩，字重固定为 bold。
func adaptButton(props bag, profile layout.StyleProfile, palette layout.Palette) []layout.Element {
	p := profile.Padding
	shape := layout.Element{
		Kind:         layout.KindRectangle,
		X:            props.number(0, "x"),
		Y:            props.number(0, "y"),
		Width:        props.number(buttonWidth, "width"),
		Height:       props.number(buttonHeight, "height"),
		Fill:         props.str(palette.Accent, "fill", "backgroundColor", "color"),
		CornerRadius: props.number(profile.BorderRadius, "borderRadius", "cornerRadius"),
		ShadowBlur:   props.number(profile.ShadowBlur, "shadowBlur"),
	}
	label := layout.Element{
		Kind:       layout.KindText,
		X:          shape.X + p,
		Y:          shape.Y + p/2,
		Width:      shape.Width - 2*p,
		Height:     shape.Height - p,
		Fill:       props.str(palette.Background, "textColor"),
		Content:    props.str(buttonLabel, "content", "text", "label"),
		FontSize:   props.number(buttonFontSize, "fontSize"),
		FontWeight: layout.WeightBold,
		Align:      "center",
	}
	return []layout.Element{shape, label}
}

// bag 包装属性表，提供带别名与真值判断的读取。
type bag map[string]any

// number 返回第一个可转换且非零的数值；字符串允许 "24" 或 "24px"。
func (b bag) number(def float64, keys ...string) float64 {
	for _, key := range keys {
		raw, ok := b[key]
		if !ok || raw == nil {
			continue
		}
		if s, isStr := raw.(string); isStr {
			raw = strings.TrimSuffix(strings.TrimSpace(s), "px")
		}
		if _, isBool := raw.(bool); isBool {
			continue
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil || v == 0 {
			continue
		}
		return v
	}
	return def
}

// str 返回第一个非空的字符串值。
func (b bag) str(def string, keys ...string) string {
	for _, key := range keys {
		raw, ok := b[key]
		if !ok || raw == nil {
			continue
		}
		if _, isBool := raw.(bool); isBool {
			continue
		}
		v, err := cast.ToStringE(raw)
		if err != nil || v == "" {
			continue
		}
		return v
	}
	return def
}
