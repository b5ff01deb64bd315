package ws2812

//Profile names a bit timing table.
type Profile uint8

//Valid Profiles
const (
	ProfileStandard Profile = iota
	ProfileSlow
)

func (p Profile) String() string {
	switch p {
	case ProfileStandard:
		return "standard"
	case ProfileSlow:
		return "slow"
	}
	return "unknown"
}

//Timing is the edge placement of one bit in ticks, counted from the tick the bit starts on.
type Timing struct {
	Rise int
	Fall int
}

//High returns the number of ticks the line is high.
func (t Timing) High() int {
	return t.Fall - t.Rise
}

//Low returns the number of ticks the line is low until the next bit starts.
func (t Timing) Low() int {
	return ticksPerBit - t.High()
}

//Timing returns the edge placement for a bit of value one.
//
//	profile   bit  high  low
//	standard  1    2     1     ~667ns / ~333ns
//	standard  0    1     2     ~333ns / ~667ns
//	slow      1    2     1
//	slow      0    0     3     falling edge right after the rising edge, high time is the pin latency
func (p Profile) Timing(one bool) Timing {
	switch {
	case one:
		return Timing{Rise: 0, Fall: 2}
	case p == ProfileSlow:
		return Timing{Rise: 0, Fall: 0}
	default:
		return Timing{Rise: 0, Fall: 1}
	}
}

// Each bit below waits exactly three times. The line goes high right after the first wait of a bit, the trailing low of a
// bit is closed by the first wait of the next one (or the latch).

func (d *Device) writeBitStandard(one bool) {
	if one {
		d.wait()
		d.high()
		d.wait()
		d.wait()
		d.low()
	} else {
		d.wait()
		d.high()
		d.wait()
		d.low()
		d.wait()
	}
}

func (d *Device) writeBitSlow(one bool) {
	if one {
		d.wait()
		d.high()
		d.wait()
		d.wait()
		d.low()
	} else {
		d.wait()
		d.high()
		d.low()
		d.wait()
		d.wait()
	}
}
