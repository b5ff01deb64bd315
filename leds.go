package ws2812

import "iter"

//LEDs can be a single LED or a slice depending on the implementation. Position defines the physical position on the LED strip starting at 0 to the total number of LEDs on that strip.
type LEDs interface {
	Red(position int) uint8
	Green(position int) uint8
	Blue(position int) uint8
	UInt32(position int) uint32 //Format 0x00RRGGBB
	TotalCount() int
}

//Sequence returns the LEDs as a pixel sequence for Device.Write, starting at position 0.
//The colors are read while the frame is sent, so leds must not change during Write.
func Sequence(leds LEDs) iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		for i := 0; i < leds.TotalCount(); i++ {
			if !yield(RGB{R: leds.Red(i), G: leds.Green(i), B: leds.Blue(i)}) {
				return
			}
		}
	}
}
