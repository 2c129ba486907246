package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// synth 是测试辅助：按意图解析配色与样式后合成元素序列。
func synth(frame Frame, intent Intent) []Element {
	return Synthesize(frame, intent, ResolvePalette(intent.ColorScheme), ResolveStyle(intent.Style))
}

func countKind(elements []Element, kind Kind) int {
	n := 0
	for _, el := range elements {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

func TestMobileAppMinimalDarkGolden(t *testing.T) {
	frame := Frame{ID: "f1", Width: 375, Height: 812}
	intent := Intent{Type: MobileApp, Style: StyleMinimal, ColorScheme: SchemeDark}

	card := func(y float64) Element {
		return Element{Kind: KindRectangle, X: 24, Y: y, Width: 327, Height: 100, Fill: "#60a5fa1a", CornerRadius: 4}
	}
	label := func(x float64, content string) Element {
		return Element{Kind: KindText, X: x, Y: 741, Width: 93.75, Height: 20, Fill: "#f3f4f6", Content: content, FontSize: 12, FontWeight: WeightNormal, Align: "center"}
	}
	want := []Element{
		{Kind: KindRectangle, X: 0, Y: 0, Width: 375, Height: 44, Fill: "#111827"},
		{Kind: KindRectangle, X: 0, Y: 44, Width: 375, Height: 56, Fill: "#3b82f6"},
		{Kind: KindText, X: 24, Y: 60, Width: 327, Height: 24, Fill: "#111827", Content: "Home", FontSize: 17, FontWeight: WeightBold, Align: "center"},
		card(124),
		card(240),
		card(356),
		card(472),
		{Kind: KindRectangle, X: 0, Y: 729, Width: 375, Height: 83, Fill: "#111827"},
		label(0, "Home"),
		label(93.75, "Search"),
		label(187.5, "Activity"),
		label(281.25, "Profile"),
	}

	got := synth(frame, intent)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mobile-app golden mismatch (-want +got):\n%s", diff)
	}
}

// 场景 A：状态栏、4 张高度 100 的卡片、4 个宽度 93.75 的导航标签。
func TestMobileAppScenario(t *testing.T) {
	got := synth(Frame{Width: 375, Height: 812}, Intent{Type: MobileApp, Style: StyleMinimal, ColorScheme: SchemeDark})

	status := got[0]
	if status.Kind != KindRectangle || status.X != 0 || status.Y != 0 || status.Width != 375 || status.Height != 44 || status.Fill != "#111827" {
		t.Fatalf("unexpected status bar: %+v", status)
	}

	cards, labels := 0, 0
	for _, el := range got {
		if el.Kind == KindRectangle && el.Height == 100 {
			cards++
		}
		if el.Kind == KindText && el.Width == 93.75 {
			labels++
		}
	}
	if cards != 4 {
		t.Fatalf("expected 4 cards of height 100, got %d", cards)
	}
	if labels != 4 {
		t.Fatalf("expected 4 nav labels of width 93.75, got %d", labels)
	}
}

func TestMobileAppCardHeightAndGapFollowStyle(t *testing.T) {
	got := synth(Frame{Width: 375, Height: 812}, Intent{Type: MobileApp, Style: StyleModern, ColorScheme: SchemeLight})
	var cards []Element
	for _, el := range got {
		if el.Kind == KindRectangle && el.Height == 140 {
			cards = append(cards, el)
		}
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards of height 140, got %d", len(cards))
	}
	for i := 1; i < len(cards); i++ {
		if gap := cards[i].Y - (cards[i-1].Y + cards[i-1].Height); gap != 24 {
			t.Fatalf("card %d gap = %g want 24", i, gap)
		}
	}
}

// 场景 B：classic 风格的标题字号为 56。
func TestLandingClassicHeadlineSize(t *testing.T) {
	got := synth(Frame{Width: 1440, Height: 900}, Intent{Type: LandingPage, Style: StyleClassic, ColorScheme: SchemeLight})
	headline := findContent(t, got, "Welcome to Our Platform")
	if headline.FontSize != 56 {
		t.Fatalf("expected headline fontSize 56, got %g", headline.FontSize)
	}

	for _, style := range []Style{StyleMinimal, StyleModern} {
		got := synth(Frame{Width: 1440, Height: 900}, Intent{Type: LandingPage, Style: style, ColorScheme: SchemeLight})
		if h := findContent(t, got, "Welcome to Our Platform"); h.FontSize != 48 {
			t.Fatalf("style %s: expected headline fontSize 48, got %g", style, h.FontSize)
		}
	}
}

func TestLandingPaintOrder(t *testing.T) {
	palette := ResolvePalette(SchemeLight)
	got := synth(Frame{Width: 1440, Height: 900}, Intent{Type: LandingPage, Style: StyleModern, ColorScheme: SchemeLight})

	band, nav, hero := -1, -1, -1
	for i, el := range got {
		switch {
		case el.Kind == KindRectangle && el.Height == 600 && band < 0:
			band = i
		case el.Kind == KindRectangle && el.Fill == palette.Primary && el.Width == 1440:
			nav = i
		case el.Kind == KindRectangle && el.Fill == Tint(palette.Accent):
			hero = i
		}
	}
	if band < 0 || nav < 0 || hero < 0 {
		t.Fatalf("missing records: band=%d nav=%d hero=%d", band, nav, hero)
	}
	if !(band < nav && nav < hero) {
		t.Fatalf("paint order violated: band=%d nav=%d hero=%d", band, nav, hero)
	}
}

func TestLandingHeroFillAndCTAOffset(t *testing.T) {
	frame := Frame{Width: 1440, Height: 900}
	classic := synth(frame, Intent{Type: LandingPage, Style: StyleClassic, ColorScheme: SchemeLight})
	if hero := classic[3]; hero.Fill != Transparent || hero.X != 40 || hero.Y != 120 || hero.Width != 1360 || hero.Height != 440 {
		t.Fatalf("unexpected classic hero: %+v", hero)
	}
	cta := classic[6]
	if cta.X != 144 || cta.Y != 420 || cta.Width != 180 || cta.Height != 56 || cta.Fill != "#3b82f6" {
		t.Fatalf("unexpected cta: %+v", cta)
	}
	label := classic[7]
	if label.X != 164 || label.Y != 436 || label.Width != 140 || label.Content != "Get Started" {
		t.Fatalf("unexpected cta label: %+v", label)
	}
}

func TestDashboardGrid(t *testing.T) {
	for _, width := range []float64{800, 1024, 1440} {
		for _, style := range []Style{StyleMinimal, StyleModern, StyleClassic} {
			intent := Intent{Type: Dashboard, Style: style, ColorScheme: SchemeLight}
			profile := ResolveStyle(style)
			got := synth(Frame{Width: width, Height: 900}, intent)

			var tiles []Element
			for _, el := range got {
				if el.Kind == KindRectangle && el.Height == 200 {
					tiles = append(tiles, el)
				}
			}
			if len(tiles) != 6 {
				t.Fatalf("w=%g %s: expected 6 tiles, got %d", width, style, len(tiles))
			}

			sw := 250.0
			if style == StyleMinimal {
				sw = 200
			}
			cw := (width - sw - 3*profile.Padding) / 2
			for i, tile := range tiles {
				if tile.Width != cw {
					t.Fatalf("tile %d width = %g want %g", i, tile.Width, cw)
				}
				if i > 0 {
					prev := tiles[i-1]
					// 行优先：同一行 x 递增，换行后 y 递增
					if !(tile.Y > prev.Y || (tile.Y == prev.Y && tile.X > prev.X)) {
						t.Fatalf("tile %d not in row-major order: %+v after %+v", i, tile, prev)
					}
				}
				for j := 0; j < i; j++ {
					if overlaps(tile, tiles[j]) {
						t.Fatalf("w=%g %s: tile %d overlaps tile %d", width, style, i, j)
					}
				}
			}
		}
	}
}

func TestDashboardSidebarByStyle(t *testing.T) {
	palette := ResolvePalette(SchemeColorful)
	frame := Frame{Width: 1440, Height: 900}

	minimal := synth(frame, Intent{Type: Dashboard, Style: StyleMinimal, ColorScheme: SchemeColorful})
	if sb := minimal[0]; sb.Width != 200 || sb.Height != 900 || sb.Fill != palette.Background {
		t.Fatalf("unexpected minimal sidebar: %+v", sb)
	}
	modern := synth(frame, Intent{Type: Dashboard, Style: StyleModern, ColorScheme: SchemeColorful})
	if sb := modern[0]; sb.Width != 250 || sb.Fill != palette.Primary {
		t.Fatalf("unexpected modern sidebar: %+v", sb)
	}
	classic := synth(frame, Intent{Type: Dashboard, Style: StyleClassic, ColorScheme: SchemeColorful})
	if sb := classic[0]; sb.Width != 250 || sb.Fill != palette.Background {
		t.Fatalf("unexpected classic sidebar: %+v", sb)
	}
	if top := modern[2]; top.X != 250 || top.Width != 1190 || top.Height != 64 {
		t.Fatalf("unexpected top bar: %+v", top)
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	frame := Frame{ID: "f", Width: 1440, Height: 900}
	for _, dt := range []DesignType{LandingPage, Dashboard, MobileApp} {
		intent := Intent{Type: dt, Style: StyleModern, ColorScheme: SchemeColorful}
		first := synth(frame, intent)
		second := synth(frame, intent)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%s not deterministic:\n%s", dt, diff)
		}
	}
}

func TestSynthesizeUnknownTypeIsEmpty(t *testing.T) {
	got := synth(Frame{Width: 1440, Height: 900}, Intent{Type: "portfolio", Style: StyleMinimal, ColorScheme: SchemeLight})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil sequence, got %#v", got)
	}
}

func TestSynthesizeWithCustomCopy(t *testing.T) {
	opts := Options{Copy: Copy{Headline: "Ship it", NavLabels: [4]string{"", "Find"}}}
	intent := Intent{Type: LandingPage, Style: StyleMinimal, ColorScheme: SchemeLight}
	got := SynthesizeWithOptions(Frame{Width: 1440, Height: 900}, intent, ResolvePalette(SchemeLight), ResolveStyle(StyleMinimal), opts)
	findContent(t, got, "Ship it")
	findContent(t, got, "Get Started")

	mobile := SynthesizeWithOptions(Frame{Width: 375, Height: 812}, Intent{Type: MobileApp}, ResolvePalette(""), ResolveStyle(""), opts)
	findContent(t, mobile, "Find")
	if n := countKind(mobile, KindText); n != 5 {
		t.Fatalf("expected 5 text records, got %d", n)
	}
}

func TestWriteDebugJSON(t *testing.T) {
	res := Compose(Frame{ID: "f", Width: 375, Height: 812}, Intent{Type: MobileApp, Style: StyleMinimal, ColorScheme: SchemeDark}, DefaultOptions())
	path := filepath.Join(t.TempDir(), "debug.json")
	if err := WriteDebugJSON(res, path); err != nil {
		t.Fatalf("WriteDebugJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read debug: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("debug JSON is empty")
	}
	if res.Palette.Background != "#111827" || len(res.Elements) != 12 {
		t.Fatalf("unexpected compose result: %+v", res)
	}
}

func findContent(t *testing.T, elements []Element, content string) Element {
	t.Helper()
	for _, el := range elements {
		if el.Kind == KindText && el.Content == content {
			return el
		}
	}
	t.Fatalf("no text record with content %q", content)
	return Element{}
}

func overlaps(a, b Element) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X && a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}
