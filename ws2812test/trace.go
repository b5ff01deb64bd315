package ws2812test

import (
	"github.com/DerLukas15/ws2812"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiostream"
)

// Trace is a recorded waveform. Ticks are relative to the start of the recording, End is the tick count when the trace
// was taken.
type Trace struct {
	Edges []Edge
	End   int
}

// Pulse is one high pulse and the low time following it, in ticks.
type Pulse struct {
	Rise int
	High int
	Low  int
}

// Period returns High+Low.
func (p Pulse) Period() int {
	return p.High + p.Low
}

// Pulses pairs rising and falling edges. The low time of a pulse runs until the next rising edge. The last pulse owns
// every tick up to and including End, which is the tick its trailing low is closed on.
func (t Trace) Pulses() ([]Pulse, error) {
	var pulses []Pulse
	edges := t.Edges
	for i := 0; i < len(edges); i += 2 {
		if edges[i].Level != gpio.High {
			return nil, errors.Errorf("edge %d at tick %d is not rising", i, edges[i].Tick)
		}
		if i+1 >= len(edges) {
			return nil, errors.Errorf("line still high at the end of the trace")
		}
		rise, fall := edges[i].Tick, edges[i+1].Tick
		next := t.End + 1
		if i+2 < len(edges) {
			next = edges[i+2].Tick
		}
		pulses = append(pulses, Pulse{Rise: rise, High: fall - rise, Low: next - fall})
	}
	return pulses, nil
}

// Decode turns the pulses back into bytes, MSB first, using the timing table of profile. The low time of the very last
// pulse is not checked since it contains the latch.
func (t Trace) Decode(profile ws2812.Profile) ([]byte, error) {
	pulses, err := t.Pulses()
	if err != nil {
		return nil, err
	}
	if len(pulses)%8 != 0 {
		return nil, errors.Errorf("%d pulses do not make up whole bytes", len(pulses))
	}
	one, zero := profile.Timing(true), profile.Timing(false)
	out := make([]byte, 0, len(pulses)/8)
	var cur byte
	for i, p := range pulses {
		last := i == len(pulses)-1
		cur <<= 1
		switch {
		case p.High == one.High() && (last || p.Low == one.Low()):
			cur |= 1
		case p.High == zero.High() && (last || p.Low == zero.Low()):
		default:
			return nil, errors.Errorf("pulse %d at tick %d: %d high, %d low is no %s bit", i, p.Rise, p.High, p.Low, profile)
		}
		if i%8 == 7 {
			out = append(out, cur)
			cur = 0
		}
	}
	return out, nil
}

// LevelAt returns the level of the line during tick slot n, after all edges stamped with tick n.
func (t Trace) LevelAt(n int) gpio.Level {
	l := gpio.Low
	for _, e := range t.Edges {
		if e.Tick > n {
			break
		}
		l = e.Level
	}
	return l
}

// BitStream samples the line once per tick slot from 1 to End, MSB first. A pulse shorter than a tick is not visible.
// At TickFrequency the standard profile renders as the usual NRZ code, 110 for a one and 100 for a zero.
func (t Trace) BitStream() *gpiostream.BitStream {
	bits := make([]byte, (t.End+7)/8)
	l := gpio.Low
	e := 0
	for n := 1; n <= t.End; n++ {
		for e < len(t.Edges) && t.Edges[e].Tick <= n {
			l = t.Edges[e].Level
			e++
		}
		if l == gpio.High {
			bits[(n-1)/8] |= 0x80 >> uint((n-1)%8)
		}
	}
	return &gpiostream.BitStream{
		Freq: ws2812.TickFrequency,
		Bits: bits,
		LSBF: false,
	}
}
