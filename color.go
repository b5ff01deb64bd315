package ws2812

import (
	"encoding"
	"fmt"
	"image/color"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

//RGB is the color of one pixel. The channels are sent as is, there is no gamma or brightness correction.
type RGB struct {
	R, G, B uint8
}

var (
	_ color.Color              = RGB{}
	_ encoding.TextUnmarshaler = (*RGB)(nil)
	_ encoding.TextMarshaler   = RGB{}
)

//RGBFromColor turns a color.Color into an RGB. Alpha is dropped.
func RGBFromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	// A color's RGBA method returns values in the range [0, 65535]
	red, green, blue, _ := c.RGBA()
	return RGB{R: uint8(red >> 8), G: uint8(green >> 8), B: uint8(blue >> 8)}
}

//RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

//Uint32 returns the color as 0x00RRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

//MarshalText returns the color as #rrggbb.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

//UnmarshalText parses #rrggbb or rrggbb.
func (c *RGB) UnmarshalText(text []byte) error {
	var r, g, b uint8
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 {
		return errors.Errorf("invalid color %q", text)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return errors.Wrapf(err, "invalid color %q", text)
	}
	*c = RGB{R: r, G: g, B: b}
	return nil
}

//Pixels returns a sequence over pixels.
func Pixels(pixels []RGB) iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		for _, c := range pixels {
			if !yield(c) {
				return
			}
		}
	}
}

//Colors returns a sequence over colors converted with RGBFromColor.
func Colors(colors []color.Color) iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		for _, c := range colors {
			if !yield(RGBFromColor(c)) {
				return
			}
		}
	}
}

//Repeat returns a sequence of n times c.
func Repeat(n int, c RGB) iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		for i := 0; i < n; i++ {
			if !yield(c) {
				return
			}
		}
	}
}
