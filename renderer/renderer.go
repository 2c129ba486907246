package renderer

import (
	"context"

	"github.com/ByLCY/designkit/layout"
)

// Level 是宿主通知的级别。
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// PageHandle 标识宿主中新建的页面。
type PageHandle struct {
	ID   string
	Name string
}

// ShapeHandle 标识宿主中新建的图形。
type ShapeHandle struct {
	ID string
}

// RectangleSpec 是创建矩形所需的参数，坐标相对所属 Frame。
type RectangleSpec struct {
	FrameID      string
	X, Y         float64
	Width        float64
	Height       float64
	Fill         string
	CornerRadius float64
	ShadowBlur   float64
}

// TextSpec 是创建文本块所需的参数。
type TextSpec struct {
	FrameID    string
	X, Y       float64
	Width      float64
	Height     float64
	Content    string
	FontSize   float64
	FontWeight string
	Fill       string
	Align      string
}

// Host 抽象宿主设计工具的文档 API。每个调用都可能失败，调用方需按顺序等待完成。
// 图形的层叠顺序由创建顺序决定。
type Host interface {
	CreatePage(ctx context.Context, name string) (PageHandle, error)
	CreateFrame(ctx context.Context, name string, width, height float64) (layout.Frame, error)
	CreateRectangle(ctx context.Context, spec RectangleSpec) (ShapeHandle, error)
	CreateText(ctx context.Context, spec TextSpec) (ShapeHandle, error)
	Notify(level Level, message string)
}

// Exporter 由能够把已创建内容输出为文件的宿主实现，例如 PDF 或 SVG。
type Exporter interface {
	Export() ([]byte, error)
}

// RectangleFromElement 把元素记录转换为矩形参数。
func RectangleFromElement(frameID string, el layout.Element) RectangleSpec {
	return RectangleSpec{
		FrameID:      frameID,
		X:            el.X,
		Y:            el.Y,
		Width:        el.Width,
		Height:       el.Height,
		Fill:         el.Fill,
		CornerRadius: el.CornerRadius,
		ShadowBlur:   el.ShadowBlur,
	}
}

// TextFromElement 把元素记录转换为文本参数。
func TextFromElement(frameID string, el layout.Element) TextSpec {
	return TextSpec{
		FrameID:    frameID,
		X:          el.X,
		Y:          el.Y,
		Width:      el.Width,
		Height:     el.Height,
		Content:    el.Content,
		FontSize:   el.FontSize,
		FontWeight: el.FontWeight,
		Fill:       el.Fill,
		Align:      el.Align,
	}
}
