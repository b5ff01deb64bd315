package ws2812

import "iter"

//Writer is implemented by everything that can send a frame of pixels to a strip.
type Writer interface {
	Write(pixels iter.Seq[RGB]) error
}

//Device is the encoder for one strip. It owns the timer and the pin for its whole lifetime.
/*
Nothing else may touch the timer or the pin while a Device is in use. A Device is not safe for concurrent use and Write
occupies the calling goroutine for the full frame.
*/
type Device struct {
	timer Timer
	pin   Pin

	onFault func(Fault, error)
	onFrame func(pixels int)
	stats   Stats
}

var _ Writer = (*Device)(nil)

//Option configures optional diagnostics of a Device.
type Option func(*Device)

//New returns a Device for timer and pin. The pin is driven low right away so the line is idle before the first frame.
//The timer has to already run at TickFrequency.
func New(timer Timer, pin Pin, opts ...Option) *Device {
	d := &Device{
		timer: timer,
		pin:   pin,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.low()
	return d
}

//Write sends all pixels of the sequence to the strip and holds the line low for LatchTicks afterwards.
/*
The sequence is consumed exactly once and in order. Every pixel is sent as green, red, blue. An empty or nil sequence only
produces the latch.

Write always returns nil. Errors of the timer or the pin are dropped and reported to the fault hook.
*/
func (d *Device) Write(pixels iter.Seq[RGB]) error {
	var n int
	if pixels != nil {
		for c := range pixels {
			d.writeByte(c.G)
			d.writeByte(c.R)
			d.writeByte(c.B)
			n++
		}
	}
	for i := 0; i < LatchTicks; i++ {
		d.wait()
	}
	d.stats.Frames++
	d.stats.Pixels += uint64(n)
	if d.onFrame != nil {
		d.onFrame(n)
	}
	return nil
}

//writeByte sends data MSB first.
func (d *Device) writeByte(data uint8) {
	for i := 0; i < bitsPerByte; i++ {
		d.writeBit(data&0x80 != 0)
		data <<= 1
	}
}
