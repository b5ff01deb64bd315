package ws2812

//Fault is the kind of a dropped peripheral error.
type Fault uint8

//Valid Faults
const (
	FaultTimer Fault = 1 + iota // Timer.Wait returned something else than nil or ErrWouldBlock
	FaultPin                    // Pin.High or Pin.Low failed
)

func (f Fault) String() string {
	switch f {
	case FaultTimer:
		return "timer"
	case FaultPin:
		return "pin"
	}
	return "unknown"
}

//Stats holds the counters of a Device.
type Stats struct {
	Frames      uint64
	Pixels      uint64
	TimerFaults uint64
	PinFaults   uint64
}

//WithFaultHook calls f for every timer or pin error the Device drops. f runs in the middle of a frame, keep it short or
//the bit timing breaks.
func WithFaultHook(f func(Fault, error)) Option {
	return func(d *Device) {
		d.onFault = f
	}
}

//WithFrameHook calls f with the pixel count after every frame, once the latch is done.
func WithFrameHook(f func(pixels int)) Option {
	return func(d *Device) {
		d.onFrame = f
	}
}

//Stats returns the counters of d.
func (d *Device) Stats() Stats {
	return d.stats
}

func (d *Device) fault(kind Fault, err error) {
	switch kind {
	case FaultTimer:
		d.stats.TimerFaults++
	case FaultPin:
		d.stats.PinFaults++
	}
	if d.onFault != nil {
		d.onFault(kind, err)
	}
}
