package layout

// 该文件定义设计意图、配色、样式参数与元素记录，供模板引擎、AI 适配器与渲染分发共用。

// DesignType 描述页面类型。
type DesignType string

const (
	LandingPage DesignType = "landing-page"
	Dashboard   DesignType = "dashboard"
	MobileApp   DesignType = "mobile-app"
)

// Style 描述视觉风格。
type Style string

const (
	StyleMinimal Style = "minimal"
	StyleModern  Style = "modern"
	StyleClassic Style = "classic"
)

// ColorScheme 描述配色方案。
type ColorScheme string

const (
	SchemeLight    ColorScheme = "light"
	SchemeDark     ColorScheme = "dark"
	SchemeColorful ColorScheme = "colorful"
)

// Intent 是一次合成的输入，合成过程中只读。
type Intent struct {
	Type        DesignType  `json:"type" validate:"required,oneof=landing-page dashboard mobile-app"`
	Style       Style       `json:"style" validate:"required,oneof=minimal modern classic"`
	ColorScheme ColorScheme `json:"colorScheme" validate:"required,oneof=light dark colorful"`
	Description string      `json:"description,omitempty"`
}

// Palette 为一次合成提供的四色方案，取值为 hex 字符串。
type Palette struct {
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// StyleProfile 记录风格对应的间距与几何常量（宿主坐标单位）。
type StyleProfile struct {
	Padding      float64 `json:"padding"`
	Gap          float64 `json:"gap"`
	BorderRadius float64 `json:"borderRadius"`
	ShadowBlur   float64 `json:"shadowBlur"`
}

// Frame 由宿主创建并持有，引擎只读取其尺寸。
type Frame struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Kind 区分元素记录的图形类型。
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindText      Kind = "text"
)

// Font weights used by the templates and the adapter.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Transparent 是不填充的特殊 fill 值。
const Transparent = "transparent"

// Element 是合成结果的最小单元，坐标相对 Frame 左上角。
// 序列中的先后顺序即绘制顺序：后出现的元素覆盖在先出现的元素之上。
type Element struct {
	Kind       Kind    `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Fill       string  `json:"fill,omitempty"`
	Content    string  `json:"content,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontWeight string  `json:"fontWeight,omitempty"`
	// 以下为可选的呈现属性，宿主不支持时可以忽略。
	CornerRadius float64 `json:"cornerRadius,omitempty"`
	ShadowBlur   float64 `json:"shadowBlur,omitempty"`
	Align        string  `json:"align,omitempty"` // 文本水平对齐：left/center/right（默认 left）
}

// Result 打包一次合成的上下文与输出，用于调试 JSON。
type Result struct {
	Intent   Intent       `json:"intent"`
	Frame    Frame        `json:"frame"`
	Palette  Palette      `json:"palette"`
	Profile  StyleProfile `json:"profile"`
	Elements []Element    `json:"elements"`
}
