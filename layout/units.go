package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file holds color-token and frame-size helpers shared by the engine and the hosts.

// tintAlpha 是半透明强调色的 alpha 后缀（约 10%）。
const tintAlpha = "1a"

// Default frame sizes in host units.
const (
	MobileFrameWidth   = 375.0
	MobileFrameHeight  = 812.0
	DesktopFrameWidth  = 1440.0
	DesktopFrameHeight = 900.0
)

// Color 采用 0-255 的 RGBA 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	A int `json:"a"`
}

// FrameSize 返回设计类型对应的默认画板尺寸：mobile-app 为 375x812，其余为 1440x900。
func FrameSize(t DesignType) (float64, float64) {
	if t == MobileApp {
		return MobileFrameWidth, MobileFrameHeight
	}
	return DesktopFrameWidth, DesktopFrameHeight
}

// Tint 在 6 位 hex 颜色后追加 alpha，得到半透明版本；其他格式原样返回。
func Tint(hex string) string {
	if len(hex) == 7 && strings.HasPrefix(hex, "#") {
		return hex + tintAlpha
	}
	return hex
}

// ParseColor 解析 #rgb、#rrggbb、#rrggbbaa 以及 transparent。
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, Transparent) {
		return Color{}, nil
	}
	raw := strings.TrimPrefix(value, "#")
	switch len(raw) {
	case 3:
		r, err1 := parseHex(strings.Repeat(raw[0:1], 2))
		g, err2 := parseHex(strings.Repeat(raw[1:2], 2))
		b, err3 := parseHex(strings.Repeat(raw[2:3], 2))
		if err := firstErr(err1, err2, err3); err != nil {
			return Color{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
		}
		return Color{R: r, G: g, B: b, A: 255}, nil
	case 6, 8:
		r, err1 := parseHex(raw[0:2])
		g, err2 := parseHex(raw[2:4])
		b, err3 := parseHex(raw[4:6])
		a := 255
		var err4 error
		if len(raw) == 8 {
			a, err4 = parseHex(raw[6:8])
		}
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return Color{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	default:
		return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
}

// IsHexColor reports whether value parses as a hex color token.
func IsHexColor(value string) bool {
	if !strings.HasPrefix(value, "#") {
		return false
	}
	_, err := ParseColor(value)
	return err == nil
}

func parseHex(s string) (int, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
