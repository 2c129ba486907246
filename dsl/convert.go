package dsl

import (
	"fmt"

	"github.com/ByLCY/designkit/adapter"
	"github.com/ByLCY/designkit/layout"
)

// Intent 从文档中提取设计意图。未声明的 style/scheme 保持为空，交由调用方校验。
func (d *Document) Intent() (layout.Intent, error) {
	intent := layout.Intent{Type: layout.DesignType(d.Type)}
	for _, st := range d.Statements {
		a := st.Assignment
		if a == nil {
			continue
		}
		switch a.Key {
		case "style":
			intent.Style = layout.Style(a.Value.Text())
		case "scheme", "colorScheme":
			intent.ColorScheme = layout.ColorScheme(a.Value.Text())
		case "description":
			intent.Description = a.Value.Text()
		default:
			return layout.Intent{}, fmt.Errorf("第 %d 行: 未知的属性 %q", a.Pos.Line, a.Key)
		}
	}
	return intent, nil
}

// FrameSize 返回声明的画板尺寸，未声明时使用设计类型的默认尺寸。
func (d *Document) FrameSize() (float64, float64) {
	w, h := layout.FrameSize(layout.DesignType(d.Type))
	for _, st := range d.Statements {
		if st.Frame != nil && st.Frame.Width > 0 && st.Frame.Height > 0 {
			w, h = float64(st.Frame.Width), float64(st.Frame.Height)
		}
	}
	return w, h
}

// Elements 返回文档中声明的抽象元素，保持声明顺序。
func (d *Document) Elements() []adapter.AbstractElement {
	var out []adapter.AbstractElement
	for _, st := range d.Statements {
		el := st.Element
		if el == nil {
			continue
		}
		props := make(map[string]any, len(el.Props))
		for _, p := range el.Props {
			props[p.Key] = p.Value.Interface()
		}
		out = append(out, adapter.AbstractElement{Type: el.Kind, Properties: props})
	}
	return out
}

// Options 把 copy 块转换为模板选项；未声明的文案由模板补齐。
func (d *Document) Options() (layout.Options, error) {
	var cp layout.Copy
	for _, st := range d.Statements {
		if st.Copy == nil {
			continue
		}
		for _, e := range st.Copy.Entries {
			switch e.Key {
			case "logo":
				cp.Logo = e.Value.Text()
			case "headline":
				cp.Headline = e.Value.Text()
			case "subheadline":
				cp.Subheadline = e.Value.Text()
			case "cta", "callToAction":
				cp.CallToAction = e.Value.Text()
			case "brand":
				cp.DashboardBrand = e.Value.Text()
			case "title":
				cp.DashboardTitle = e.Value.Text()
			case "mobileTitle":
				cp.MobileTitle = e.Value.Text()
			case "nav":
				if e.Value.Array == nil {
					return layout.Options{}, fmt.Errorf("第 %d 行: nav 需要数组", e.Pos.Line)
				}
				for i, item := range e.Value.Array.Values {
					if i >= len(cp.NavLabels) {
						return layout.Options{}, fmt.Errorf("第 %d 行: nav 最多 %d 项", e.Pos.Line, len(cp.NavLabels))
					}
					cp.NavLabels[i] = item.Text()
				}
			default:
				return layout.Options{}, fmt.Errorf("第 %d 行: 未知的文案 %q", e.Pos.Line, e.Key)
			}
		}
	}
	return layout.Options{Copy: cp}, nil
}
