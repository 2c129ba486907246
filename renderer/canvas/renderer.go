package canvasrenderer

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/designkit/fonts"
	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/logger"
	"github.com/ByLCY/designkit/renderer"
)

// 设计坐标以像素为单位（96 dpi），画布内部使用毫米，字体使用 pt。
const (
	pxToMm      = 25.4 / 96
	pxToPt      = 0.75
	lineSpacing = 1.2
	shadowAlpha = 0.12
)

// Format 是导出格式。
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// Options configures the canvas host.
type Options struct {
	Format  Format
	BaseDir string
	// Fonts 按内置字体名称（fonts.Regular 等）覆盖字体数据。
	Fonts   map[string]Resource
	Title   string
	Creator string
	Logger  *logger.Logger
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Host 通过 github.com/tdewolff/canvas 把宿主调用绘制到画板上，每个 Frame 对应一个画布。
type Host struct {
	opts      Options
	log       *logger.Logger
	fontBlobs map[string][]byte

	mu            sync.Mutex
	pages         []renderer.PageHandle
	frames        []*frameCanvas
	byID          map[string]*frameCanvas
	notifications []string

	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily
}

type frameCanvas struct {
	frame  layout.Frame
	name   string
	page   string // 所属页面名称
	canvas *canvas.Canvas
	ctx    *canvas.Context
}

var (
	_ renderer.Host     = (*Host)(nil)
	_ renderer.Exporter = (*Host)(nil)
)

// NewHost creates a PDF host without font overrides.
func NewHost() *Host {
	h, _ := NewHostWithOptions(Options{Format: FormatPDF}) // 没有字体覆盖时不会失败
	return h
}

// NewHostWithOptions creates a host with injected resources.
// A font override whose file cannot be read is an error.
func NewHostWithOptions(opts Options) (*Host, error) {
	if opts.Format == "" {
		opts.Format = FormatPDF
	}
	h := &Host{
		opts:         opts,
		log:          opts.Logger,
		fontBlobs:    map[string][]byte{},
		byID:         map[string]*frameCanvas{},
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			h.fontBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			path := res.Path
			if !filepath.IsAbs(path) && opts.BaseDir != "" {
				path = filepath.Join(opts.BaseDir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("读取字体 %s 失败: %w", name, err)
			}
			if len(data) == 0 {
				return nil, fmt.Errorf("字体 %s 为空文件: %s", name, path)
			}
			h.fontBlobs[name] = data
		}
	}
	return h, nil
}

func (h *Host) CreatePage(ctx context.Context, name string) (renderer.PageHandle, error) {
	if err := ctx.Err(); err != nil {
		return renderer.PageHandle{}, err
	}
	page := renderer.PageHandle{ID: uuid.NewString(), Name: name}
	h.mu.Lock()
	h.pages = append(h.pages, page)
	h.mu.Unlock()
	h.log.WithFields(map[string]any{"page": name}).Debug("page created")
	return page, nil
}

func (h *Host) CreateFrame(ctx context.Context, name string, width, height float64) (layout.Frame, error) {
	if err := ctx.Err(); err != nil {
		return layout.Frame{}, err
	}
	if width <= 0 || height <= 0 {
		return layout.Frame{}, fmt.Errorf("frame 尺寸无效: %gx%g", width, height)
	}
	c := canvas.New(mm(width), mm(height))
	cctx := canvas.NewContext(c)
	cctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	frame := layout.Frame{ID: uuid.NewString(), Width: width, Height: height}
	h.mu.Lock()
	defer h.mu.Unlock()
	fc := &frameCanvas{frame: frame, name: name, canvas: c, ctx: cctx}
	if n := len(h.pages); n > 0 {
		fc.page = h.pages[n-1].Name
	}
	h.frames = append(h.frames, fc)
	h.byID[frame.ID] = fc
	return frame, nil
}

func (h *Host) CreateRectangle(ctx context.Context, spec renderer.RectangleSpec) (renderer.ShapeHandle, error) {
	if err := ctx.Err(); err != nil {
		return renderer.ShapeHandle{}, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return renderer.ShapeHandle{}, fmt.Errorf("矩形尺寸无效: %gx%g", spec.Width, spec.Height)
	}
	fill, visible, err := fillColor(spec.Fill)
	if err != nil {
		return renderer.ShapeHandle{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	fc, err := h.frameLocked(spec.FrameID)
	if err != nil {
		return renderer.ShapeHandle{}, err
	}
	if !visible {
		return renderer.ShapeHandle{ID: uuid.NewString()}, nil
	}

	x, y, w, ht := mm(spec.X), mm(spec.Y), mm(spec.Width), mm(spec.Height)
	radius := math.Min(mm(spec.CornerRadius), math.Min(w, ht)/2)
	fc.ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})

	// 阴影以偏移的半透明形状近似，位于图形下方
	if spec.ShadowBlur > 0 {
		offset := mm(spec.ShadowBlur) / 4
		fc.ctx.SetFillColor(canvas.RGBA(0, 0, 0, shadowAlpha))
		fc.ctx.DrawPath(x+offset, y+offset, shapePath(w, ht, radius))
	}
	fc.ctx.SetFillColor(fill)
	fc.ctx.DrawPath(x, y, shapePath(w, ht, radius))
	return renderer.ShapeHandle{ID: uuid.NewString()}, nil
}

func (h *Host) CreateText(ctx context.Context, spec renderer.TextSpec) (renderer.ShapeHandle, error) {
	if err := ctx.Err(); err != nil {
		return renderer.ShapeHandle{}, err
	}
	fill, visible, err := fillColor(spec.Fill)
	if err != nil {
		return renderer.ShapeHandle{}, err
	}
	if spec.Fill == "" {
		fill, visible = canvas.Black, true
	}
	size := spec.FontSize
	if size <= 0 {
		size = 16
	}
	face, err := h.fontFace(fonts.ForWeight(spec.FontWeight), size*pxToPt, fill)
	if err != nil {
		return renderer.ShapeHandle{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	fc, err := h.frameLocked(spec.FrameID)
	if err != nil {
		return renderer.ShapeHandle{}, err
	}
	if !visible || strings.TrimSpace(spec.Content) == "" {
		return renderer.ShapeHandle{ID: uuid.NewString()}, nil
	}

	width := mm(spec.Width)
	lines := layoutLines(spec.Content, width, face, mm(size*lineSpacing))

	// 处理水平对齐：left（默认）/center/right。
	var textAlign canvas.TextAlign
	var anchorX float64
	switch strings.ToLower(spec.Align) {
	case "center":
		textAlign = canvas.Center
		anchorX = mm(spec.X) + width/2
	case "right", "end":
		textAlign = canvas.Right
		anchorX = mm(spec.X) + width
	default:
		textAlign = canvas.Left
		anchorX = mm(spec.X)
	}

	metrics := face.Metrics()
	cursorY := mm(spec.Y)
	for _, line := range lines {
		cursorY += line.GapBefore
		// 基线位置：行顶部加上字体上升部
		fc.ctx.DrawText(anchorX, cursorY+metrics.Ascent, canvas.NewTextLine(face, line.Content, textAlign))
		cursorY += line.Height
	}
	return renderer.ShapeHandle{ID: uuid.NewString()}, nil
}

func (h *Host) Notify(level renderer.Level, message string) {
	h.mu.Lock()
	h.notifications = append(h.notifications, string(level)+": "+message)
	h.mu.Unlock()

	switch level {
	case renderer.LevelError:
		h.log.Error(nil, message)
	case renderer.LevelWarning:
		h.log.Warn(message)
	default:
		h.log.Info(message)
	}
}

// Notifications 返回收到的通知，格式为 "level: message"。
func (h *Host) Notifications() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.notifications...)
}

// FrameCount 返回已创建的画板数量。
func (h *Host) FrameCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

// Export 输出已创建的画板：PDF 每个画板一页，SVG 只支持单个画板。
func (h *Host) Export() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.frames) == 0 {
		return nil, fmt.Errorf("缺少可渲染的画板")
	}

	var buf bytes.Buffer
	switch h.opts.Format {
	case FormatSVG:
		if len(h.frames) > 1 {
			return nil, fmt.Errorf("SVG 只能导出单个画板，当前有 %d 个", len(h.frames))
		}
		fc := h.frames[0]
		writer := svg.New(&buf, mm(fc.frame.Width), mm(fc.frame.Height), nil)
		fc.canvas.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	case FormatPDF:
		first := h.frames[0]
		writer := pdf.New(&buf, mm(first.frame.Width), mm(first.frame.Height), nil)
		writer.SetInfo(h.title(), "", "", "", h.opts.Creator)
		for i, fc := range h.frames {
			if i > 0 {
				writer.NewPage(mm(fc.frame.Width), mm(fc.frame.Height))
			}
			fc.canvas.RenderTo(writer)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的导出格式 %q", h.opts.Format)
	}
	return buf.Bytes(), nil
}

// MeasureLines 按像素宽度与字号换行，返回的尺寸为毫米。
func (h *Host) MeasureLines(content string, widthPx, fontSizePx float64, weight string) ([]Line, error) {
	face, err := h.fontFace(fonts.ForWeight(weight), fontSizePx*pxToPt, canvas.Black)
	if err != nil {
		return nil, err
	}
	return layoutLines(content, mm(widthPx), face, mm(fontSizePx*lineSpacing)), nil
}

// layoutLines 换行后回填行高；首行 GapBefore 为 0，其余为行距减去字体行高。
func layoutLines(content string, width float64, face *canvas.FontFace, lineHeight float64) []Line {
	lines := greedyWrap(content, width, face)
	textHeight := face.Metrics().LineHeight
	if textHeight <= 0 {
		textHeight = lineHeight
	}
	leading := math.Max(lineHeight-textHeight, 0)
	if len(lines) == 0 {
		lines = []Line{{Content: "", Height: textHeight}}
	}
	for i := range lines {
		lines[i].Height = textHeight
		if i > 0 {
			lines[i].GapBefore = leading
		}
	}
	return lines
}

// title 优先使用 Options.Title，否则取第一个画板所属页面的名称。
func (h *Host) title() string {
	if h.opts.Title != "" {
		return h.opts.Title
	}
	if len(h.frames) > 0 {
		return h.frames[0].page
	}
	return ""
}

func (h *Host) frameLocked(id string) (*frameCanvas, error) {
	if fc, ok := h.byID[id]; ok {
		return fc, nil
	}
	return nil, fmt.Errorf("找不到画板 %q", id)
}

func (h *Host) fontFace(name string, sizePt float64, col color.Color) (*canvas.FontFace, error) {
	family, err := h.ensureFontFamily(name)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, col, canvas.FontRegular, canvas.FontNormal), nil
}

func (h *Host) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	h.fontMu.Lock()
	defer h.fontMu.Unlock()

	if family, ok := h.fontFamilies[name]; ok {
		return family, nil
	}
	data, ok := h.fontBlobs[name]
	if !ok {
		var err error
		if data, err = fonts.Load(name); err != nil {
			return nil, err
		}
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	h.fontFamilies[name] = family
	return family, nil
}

func shapePath(w, h, radius float64) *canvas.Path {
	if radius > 0 {
		return canvas.RoundedRectangle(w, h, radius)
	}
	return canvas.Rectangle(w, h)
}

// fillColor 解析 fill；transparent 返回 visible=false。
func fillColor(fill string) (color.Color, bool, error) {
	if fill == "" || strings.EqualFold(fill, layout.Transparent) {
		return nil, false, nil
	}
	c, err := layout.ParseColor(fill)
	if err != nil {
		return nil, false, err
	}
	if c.A == 0 {
		return nil, false, nil
	}
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0), true, nil
}

func mm(px float64) float64 { return px * pxToMm }
