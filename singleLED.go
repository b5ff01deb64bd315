package ws2812

import "image/color"

//SingleLED describes one LED with color values as 0x00RRGGBB which can be used as an LEDs.
type SingleLED uint32 //0x00RRGGBB

//ColorToSingleLED turns a color.Color to a SingleLED.
func ColorToSingleLED(c color.Color) *SingleLED {
	res := SingleLED(RGBFromColor(c).Uint32())
	return &res
}

//RGBToSingleLED turns r, g and b values to a SingleLED.
func RGBToSingleLED(r, g, b uint8) *SingleLED {
	res := SingleLED(RGB{R: r, G: g, B: b}.Uint32())
	return &res
}

//ToColor returns a color.Color object of the SingleLED.
func (l *SingleLED) ToColor() color.Color {
	return l.RGB()
}

//RGB returns the SingleLED as RGB.
func (l *SingleLED) RGB() RGB {
	return RGB{
		R: uint8(*l >> 16),
		G: uint8(*l >> 8),
		B: uint8(*l),
	}
}

//SetColor sets the color from color.Color.
func (l *SingleLED) SetColor(c color.Color) {
	*l = SingleLED(RGBFromColor(c).Uint32())
}

//SetRGB sets the color value by r, g and b values.
func (l *SingleLED) SetRGB(r, g, b uint8) {
	*l = SingleLED(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

//SetDirect sets the color value directly. Format 0x00RRGGBB, the top byte is dropped.
func (l *SingleLED) SetDirect(val uint32) {
	*l = SingleLED(val & 0x00ffffff)
}

//Red returns the red color amount.
func (l *SingleLED) Red(unused int) uint8 {
	return uint8(*l>>16) & 255
}

//Green returns the green color amount.
func (l *SingleLED) Green(unused int) uint8 {
	return uint8(*l>>8) & 255
}

//Blue returns the blue color amount.
func (l *SingleLED) Blue(unused int) uint8 {
	return uint8(*l) & 255
}

//UInt32 returns the color as uint32. Format 0x00RRGGBB
func (l *SingleLED) UInt32(unused int) uint32 {
	return uint32(*l)
}

//TotalCount returns the number of LEDs.
//
//In this case this will always be 1.
func (l *SingleLED) TotalCount() int {
	return 1
}
