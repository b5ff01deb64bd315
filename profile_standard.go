//go:build !ws2812slow

package ws2812

//ActiveProfile is the bit timing profile this package was built with.
const ActiveProfile = ProfileStandard

func (d *Device) writeBit(one bool) {
	d.writeBitStandard(one)
}
