package layout

const (
	landingBandHeight = 600.0
	landingNavHeight  = 80.0
	ctaWidth          = 180.0
	ctaHeight         = 56.0

	sidebarWidthMinimal = 200.0
	sidebarWidth        = 250.0
	topBarHeight        = 64.0
	tileHeight          = 200.0
	tileCount           = 6
	tileColumns         = 2

	statusBarHeight   = 44.0
	headerHeight      = 56.0
	navBarHeight      = 83.0
	cardHeightMinimal = 100.0
	cardHeight        = 140.0
	cardCount         = 4
	navLabelCount     = 4
)

// Synthesize 根据设计类型生成有序的元素序列，使用内置文案。
// 纯函数：不做 I/O，也不调用宿主；未知类型返回空序列。
func Synthesize(frame Frame, intent Intent, palette Palette, profile StyleProfile) []Element {
	return SynthesizeWithOptions(frame, intent, palette, profile, DefaultOptions())
}

// SynthesizeWithOptions 与 Synthesize 相同，但允许替换模板文案。
func SynthesizeWithOptions(frame Frame, intent Intent, palette Palette, profile StyleProfile, opts Options) []Element {
	opts = opts.withDefaults()
	switch intent.Type {
	case LandingPage:
		return buildLandingPage(frame, intent.Style, palette, profile, opts.Copy)
	case Dashboard:
		return buildDashboard(frame, intent.Style, palette, profile, opts.Copy)
	case MobileApp:
		return buildMobileApp(frame, intent.Style, palette, profile, opts.Copy)
	default:
		return []Element{}
	}
}

// buildLandingPage 生成背景带、导航栏、Logo、Hero 容器、标题、副标题与 CTA。
func buildLandingPage(frame Frame, style Style, palette Palette, profile StyleProfile, cp Copy) []Element {
	w := frame.Width
	p := profile.Padding

	heroFill := Transparent
	if style == StyleModern {
		heroFill = Tint(palette.Accent)
	}
	headlineSize := 48.0
	if style == StyleClassic {
		headlineSize = 56
	}
	ctaX := w * 0.1
	ctaY := 380 + p

	return []Element{
		rect(0, 0, w, landingBandHeight, palette.Background),
		rect(0, 0, w, landingNavHeight, palette.Primary),
		text(p, 24, 160, 32, cp.Logo, 24, WeightBold, palette.Background),
		withShape(rect(p, landingNavHeight+p, w-2*p, landingBandHeight-landingNavHeight-2*p, heroFill), profile),
		text(w*0.1, 160, w*0.5, 120, cp.Headline, headlineSize, WeightBold, palette.Text),
		text(w*0.1, 300, w*0.5, 60, cp.Subheadline, 20, WeightNormal, palette.Text),
		withShape(rect(ctaX, ctaY, ctaWidth, ctaHeight, palette.Accent), profile),
		centered(text(ctaX+p/2, ctaY+16, ctaWidth-p, 24, cp.CallToAction, 18, WeightBold, palette.Background)),
	}
}

// buildDashboard 生成侧边栏、顶栏以及两列六个内容卡片（按行优先排列）。
func buildDashboard(frame Frame, style Style, palette Palette, profile StyleProfile, cp Copy) []Element {
	w, h := frame.Width, frame.Height
	p := profile.Padding

	sw := sidebarWidth
	if style == StyleMinimal {
		sw = sidebarWidthMinimal
	}
	sidebarFill := palette.Background
	brandFill := palette.Text
	tileFill := palette.Background
	if style == StyleModern {
		sidebarFill = palette.Primary
		brandFill = palette.Background
		tileFill = Tint(palette.Accent)
	}
	cellWidth := (w - sw - 3*p) / 2

	elements := make([]Element, 0, 4+tileCount)
	elements = append(elements,
		rect(0, 0, sw, h, sidebarFill),
		text(p, p, sw-2*p, 32, cp.DashboardBrand, 20, WeightBold, brandFill),
		rect(sw, 0, w-sw, topBarHeight, palette.Background),
		text(sw+p, 20, w-sw-2*p, 24, cp.DashboardTitle, 20, WeightBold, palette.Text),
	)
	for i := 0; i < tileCount; i++ {
		row := float64(i / tileColumns)
		col := float64(i % tileColumns)
		x := sw + p + col*(cellWidth+p)
		y := topBarHeight + p + row*(tileHeight+p)
		elements = append(elements, withShape(rect(x, y, cellWidth, tileHeight, tileFill), profile))
	}
	return elements
}

// buildMobileApp 生成状态栏、标题栏、四张卡片、底部导航及四个导航标签。
func buildMobileApp(frame Frame, style Style, palette Palette, profile StyleProfile, cp Copy) []Element {
	w, h := frame.Width, frame.Height
	p := profile.Padding

	ch := cardHeight
	if style == StyleMinimal {
		ch = cardHeightMinimal
	}
	top := statusBarHeight + headerHeight

	elements := make([]Element, 0, 4+cardCount+navLabelCount)
	elements = append(elements,
		rect(0, 0, w, statusBarHeight, palette.Background),
		rect(0, statusBarHeight, w, headerHeight, palette.Primary),
		centered(text(p, statusBarHeight+16, w-2*p, 24, cp.MobileTitle, 17, WeightBold, palette.Background)),
	)
	for i := 0; i < cardCount; i++ {
		y := top + p + float64(i)*(ch+profile.Gap)
		elements = append(elements, withShape(rect(p, y, w-2*p, ch, Tint(palette.Accent)), profile))
	}
	elements = append(elements, rect(0, h-navBarHeight, w, navBarHeight, palette.Background))

	labelWidth := w / navLabelCount
	for i := 0; i < navLabelCount; i++ {
		x := float64(i) * labelWidth
		elements = append(elements, centered(text(x, h-navBarHeight+12, labelWidth, 20, cp.NavLabels[i], 12, WeightNormal, palette.Text)))
	}
	return elements
}

func rect(x, y, w, h float64, fill string) Element {
	return Element{Kind: KindRectangle, X: x, Y: y, Width: w, Height: h, Fill: fill}
}

func text(x, y, w, h float64, content string, size float64, weight, fill string) Element {
	return Element{
		Kind:       KindText,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		Fill:       fill,
		Content:    content,
		FontSize:   size,
		FontWeight: weight,
	}
}

func withShape(el Element, profile StyleProfile) Element {
	el.CornerRadius = profile.BorderRadius
	el.ShadowBlur = profile.ShadowBlur
	return el
}

func centered(el Element) Element {
	el.Align = "center"
	return el
}
