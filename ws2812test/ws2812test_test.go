package ws2812test

import (
	"testing"

	"github.com/DerLukas15/ws2812"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
)

// nrz expands b the way SPI based drivers do it: 100 for a zero, 110 for a one, MSB first.
func nrz(b byte) []byte {
	out := uint32(0x924924)
	for k := 0; k < 8; k++ {
		if b&(1<<k) != 0 {
			out |= 1 << (3*k + 1)
		}
	}
	return []byte{byte(out >> 16), byte(out >> 8), byte(out)}
}

func TestTimerLatency(t *testing.T) {
	tm := &Timer{Latency: 2}
	assert.ErrorIs(t, tm.Wait(), ws2812.ErrWouldBlock)
	assert.ErrorIs(t, tm.Wait(), ws2812.ErrWouldBlock)
	assert.NoError(t, tm.Wait())
	assert.Equal(t, 1, tm.Ticks())
	assert.Equal(t, 2, tm.Polls())
}

func TestTimerFailEvery(t *testing.T) {
	errStuck := errors.New("stuck")
	tm := &Timer{FailEvery: 2, Err: errStuck}
	assert.NoError(t, tm.Wait())
	assert.ErrorIs(t, tm.Wait(), errStuck)
	assert.NoError(t, tm.Wait())
	assert.Equal(t, 3, tm.Ticks())
}

func TestPinRecordsChangesOnly(t *testing.T) {
	tm := &Timer{}
	p := NewPin(tm)
	p.Reset()
	require.NoError(t, p.High())
	require.NoError(t, tm.Wait())
	require.NoError(t, p.Low())
	require.NoError(t, p.Low())

	assert.Equal(t, 3, p.Calls())
	assert.Equal(t, Trace{
		Edges: []Edge{{Tick: 1, Level: gpio.Low}},
		End:   1,
	}, p.Trace())
}

func TestPinFailureKeepsLevel(t *testing.T) {
	p := NewPin(&Timer{})
	p.FailEvery = 1
	assert.ErrorIs(t, p.Low(), ErrInjected)
	assert.Equal(t, gpio.High, p.Level())
}

func TestPulses(t *testing.T) {
	tr := Trace{
		Edges: []Edge{
			{Tick: 1, Level: gpio.High}, {Tick: 3, Level: gpio.Low},
			{Tick: 4, Level: gpio.High}, {Tick: 5, Level: gpio.Low},
		},
		End: 6,
	}
	pulses, err := tr.Pulses()
	require.NoError(t, err)
	assert.Equal(t, []Pulse{{Rise: 1, High: 2, Low: 1}, {Rise: 4, High: 1, Low: 2}}, pulses)

	_, err = Trace{Edges: []Edge{{Tick: 1, Level: gpio.High}}, End: 3}.Pulses()
	assert.Error(t, err)
	_, err = Trace{Edges: []Edge{{Tick: 1, Level: gpio.Low}}, End: 3}.Pulses()
	assert.Error(t, err)
}

func TestDecodeRejectsForeignTiming(t *testing.T) {
	tr := Trace{End: 24}
	for i := 0; i < 8; i++ {
		tr.Edges = append(tr.Edges, Edge{Tick: 1 + 3*i, Level: gpio.High}, Edge{Tick: 1 + 3*i, Level: gpio.Low})
	}
	got, err := tr.Decode(ws2812.ProfileSlow)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)

	_, err = tr.Decode(ws2812.ProfileStandard)
	assert.Error(t, err)
}

func TestLevelAt(t *testing.T) {
	tr := Trace{Edges: []Edge{{Tick: 2, Level: gpio.High}, {Tick: 4, Level: gpio.Low}}, End: 5}
	assert.Equal(t, gpio.Low, tr.LevelAt(1))
	assert.Equal(t, gpio.High, tr.LevelAt(2))
	assert.Equal(t, gpio.High, tr.LevelAt(3))
	assert.Equal(t, gpio.Low, tr.LevelAt(4))
}

func TestBitStreamIsNRZ(t *testing.T) {
	if ws2812.ActiveProfile != ws2812.ProfileStandard {
		t.Skip("NRZ rendering only holds for the standard profile")
	}
	tm := &Timer{}
	p := NewPin(tm)
	d := ws2812.New(tm, p)
	p.Reset()
	pixels := []ws2812.RGB{{R: 0x12, G: 0x34, B: 0x56}, {R: 0xff, G: 0x00, B: 0x81}}
	require.NoError(t, d.Write(ws2812.Pixels(pixels)))

	s := p.Trace().BitStream()
	assert.Equal(t, ws2812.TickFrequency, s.Freq)
	assert.False(t, s.LSBF)
	require.Len(t, s.Bits, (ws2812.FrameTicks(2)+7)/8)

	var want []byte
	for _, c := range pixels {
		want = append(want, nrz(c.G)...)
		want = append(want, nrz(c.R)...)
		want = append(want, nrz(c.B)...)
	}
	assert.Equal(t, want, s.Bits[:len(want)])
	for i, b := range s.Bits[len(want):] {
		assert.Zero(t, b, "latch byte %d", i)
	}
}
