package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Dark gray as used by the android toolkit (0xff444444). Not the same as colornames.Darkgray.
var DarkGray = color.RGBA{0x44, 0x44, 0x44, 0xff}

var Transparent = color.RGBA{}

//----------

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(r >> 8),
		uint8(g >> 8),
		uint8(b >> 8),
		uint8(a >> 8),
	}
}

func IntRGBA(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Alpha in the high byte (0xAARRGGBB). The result is alpha premultiplied.
func ArgbRGBA(u uint32) color.RGBA {
	c := color.NRGBA{
		A: uint8(u >> 24),
		R: uint8(u >> 16),
		G: uint8(u >> 8),
		B: uint8(u),
	}
	return RgbaColor(c)
}

func SprintRGB(c color.Color) string {
	rgba := RgbaColor(c)
	return fmt.Sprintf("%x %x %x", rgba.R, rgba.G, rgba.B)
}

//----------

// Accepts "#rgb", "#rrggbb", "#aarrggbb" and color names (golang.org/x/image/colornames, plus "dkgray").
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	name := strings.ToLower(s)
	if name == "dkgray" {
		return DarkGray, nil
	}
	if name == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color: %q", s)
}

func parseHexColor(h string) (color.Color, error) {
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color: %q", h)
	}
	switch len(h) {
	case 3:
		r := uint8(v>>8) & 0xf
		g := uint8(v>>4) & 0xf
		b := uint8(v) & 0xf
		return color.RGBA{r * 0x11, g * 0x11, b * 0x11, 0xff}, nil
	case 6:
		return IntRGBA(int(v)), nil
	case 8:
		return ArgbRGBA(uint32(v)), nil
	default:
		return nil, fmt.Errorf("bad hex color length: %q", h)
	}
}
