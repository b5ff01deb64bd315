//go:build ws2812slow

package ws2812

//ActiveProfile is the bit timing profile this package was built with.
const ActiveProfile = ProfileSlow

func (d *Device) writeBit(one bool) {
	d.writeBitSlow(one)
}
