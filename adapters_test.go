package ws2812_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/DerLukas15/ws2812"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
)

func TestPeriphPin(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO18", Num: 18, L: gpio.High}
	pin := ws2812.NewPeriphPin(p)

	ws2812.New(ws2812.NewClockTimer(ws2812.TickFrequency), pin)
	assert.Equal(t, gpio.Low, p.L, "New must drive the line low")

	require.NoError(t, pin.High())
	assert.Equal(t, gpio.High, p.L)
	require.NoError(t, pin.Low())
	assert.Equal(t, gpio.Low, p.L)
	assert.Contains(t, pin.String(), "GPIO18")
}

func TestClockTimer(t *testing.T) {
	tm := ws2812.NewClockTimer(10 * physic.Hertz)
	assert.Equal(t, 100*time.Millisecond, tm.Period())
	assert.ErrorIs(t, tm.Wait(), ws2812.ErrWouldBlock)

	start := time.Now()
	for tm.Wait() != nil {
	}
	assert.True(t, time.Since(start) >= 50*time.Millisecond, "ticked after %v", time.Since(start))
}

func TestClockTimerReportsMissedPeriodsOnce(t *testing.T) {
	tm := ws2812.NewClockTimer(20 * physic.Hertz)
	time.Sleep(120 * time.Millisecond)
	assert.NoError(t, tm.Wait())
	assert.ErrorIs(t, tm.Wait(), ws2812.ErrWouldBlock)
}

func TestTimerLoadValue(t *testing.T) {
	tests := []struct {
		name   string
		source uint32
		tick   uint32
		want   uint32
		err    error
	}{
		{"core clock 250MHz", 250000000, 3000000, 82, nil},
		{"core clock 400MHz", 400000000, 3000000, 132, nil},
		{"exact", 300000000, 3000000, 99, nil},
		{"too slow", 5000000, 3000000, 0, ws2812.ErrWrongSourceClock},
		{"no tick", 250000000, 0, 0, ws2812.ErrWrongSourceClock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ws2812.TimerLoadValue(tt.source, tt.tick)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigSetters(t *testing.T) {
	c := ws2812.NewConfig(18)
	assert.ErrorIs(t, c.SetTickFrequency(800*physic.KiloHertz), ws2812.ErrWrongFrequency)
	assert.ErrorIs(t, c.SetTickFrequency(10*physic.MegaHertz), ws2812.ErrWrongFrequency)
	assert.NoError(t, c.SetTickFrequency(3200*physic.KiloHertz))
	assert.ErrorIs(t, c.SetSourceClock(1000000), ws2812.ErrWrongSourceClock)
	assert.NoError(t, c.SetSourceClock(400000000))
	assert.NoError(t, c.SetOptions(ws2812.WithFrameHook(func(int) {})))

	_, err := c.Device()
	assert.ErrorIs(t, err, ws2812.ErrConfigNotActive)
	assert.NoError(t, c.Stop(), "stopping an inactive config is a no-op")
}

func TestRGB(t *testing.T) {
	c := ws2812.RGBFromColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	assert.Equal(t, ws2812.RGB{R: 0x12, G: 0x34, B: 0x56}, c)
	assert.Equal(t, uint32(0x123456), c.Uint32())
	assert.Equal(t, c, ws2812.RGBFromColor(c))

	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0x1212, 0x3434, 0x5656, 0xffff}, []uint32{r, g, b, a})

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#123456", string(text))

	var parsed ws2812.RGB
	require.NoError(t, parsed.UnmarshalText([]byte("#ff0080")))
	assert.Equal(t, ws2812.RGB{R: 0xff, B: 0x80}, parsed)
	require.NoError(t, parsed.UnmarshalText([]byte("0a0b0c")))
	assert.Equal(t, ws2812.RGB{R: 0x0a, G: 0x0b, B: 0x0c}, parsed)
	assert.Error(t, parsed.UnmarshalText([]byte("#fff")))
	assert.Error(t, parsed.UnmarshalText([]byte("#gggggg")))
}

func TestSequences(t *testing.T) {
	var got []ws2812.RGB
	for c := range ws2812.Colors([]color.Color{color.White, color.Black}) {
		got = append(got, c)
	}
	assert.Equal(t, []ws2812.RGB{{R: 0xff, G: 0xff, B: 0xff}, {}}, got)

	got = got[:0]
	for c := range ws2812.Repeat(3, ws2812.RGB{G: 7}) {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []ws2812.RGB{{G: 7}, {G: 7}}, got)
}

func TestLEDStrip(t *testing.T) {
	strip := ws2812.NewLEDStrip(4)
	assert.Equal(t, 4, strip.TotalCount())
	for i := 0; i < 4; i++ {
		strip.SetRGB(i, uint8(i), 0, 0)
	}
	strip.SetRGB(7, 0xff, 0xff, 0xff)
	assert.Equal(t, uint8(0), strip.Red(7))

	strip.ShiftRight(1)
	assert.Equal(t, []uint8{3, 0, 1, 2}, reds(strip))
	strip.ShiftLeft(2)
	assert.Equal(t, []uint8{1, 2, 3, 0}, reds(strip))
	strip.ShiftLeft(4)
	assert.Equal(t, []uint8{1, 2, 3, 0}, reds(strip))

	strip.Fill(color.RGBA{G: 0x80, A: 0xff})
	for c := range strip.Pixels() {
		assert.Equal(t, ws2812.RGB{G: 0x80}, c)
	}

	strip.SetColor(0, color.RGBA{R: 1, G: 2, B: 3, A: 0xff})
	assert.Equal(t, uint32(0x010203), strip.UInt32(0))
}

func TestSingleLED(t *testing.T) {
	led := ws2812.RGBToSingleLED(0xaa, 0xbb, 0xcc)
	assert.Equal(t, 1, led.TotalCount())
	assert.Equal(t, ws2812.RGB{R: 0xaa, G: 0xbb, B: 0xcc}, led.RGB())

	led.SetDirect(0xff112233)
	assert.Equal(t, uint32(0x112233), led.UInt32(0), "top byte is dropped")
	assert.Equal(t, color.Color(ws2812.RGB{R: 0x11, G: 0x22, B: 0x33}), led.ToColor())

	var pixels []ws2812.RGB
	for c := range ws2812.Sequence(ws2812.ColorToSingleLED(color.White)) {
		pixels = append(pixels, c)
	}
	assert.Equal(t, []ws2812.RGB{{R: 0xff, G: 0xff, B: 0xff}}, pixels)
}

func reds(l ws2812.LEDs) []uint8 {
	out := make([]uint8, l.TotalCount())
	for i := range out {
		out[i] = l.Red(i)
	}
	return out
}
