package ws2812

//WriteByteProfile sends one byte with the bit encoder of profile, whatever profile the package was built with.
func (d *Device) WriteByteProfile(p Profile, data uint8) {
	for i := 0; i < bitsPerByte; i++ {
		if p == ProfileSlow {
			d.writeBitSlow(data&0x80 != 0)
		} else {
			d.writeBitStandard(data&0x80 != 0)
		}
		data <<= 1
	}
}

//SendByte sends one byte with the active profile.
func (d *Device) SendByte(data uint8) {
	d.writeByte(data)
}

var TimerLoadValue = timerLoadValue
