//Package ws2812 drives WS2812 ("NeoPixel") LEDs from a single GPIO pin using a free running periodic timer as the only timing reference.
/*
There is no DMA, no interrupt and no cycle counted delay loop involved. Every pulse edge is placed on a tick boundary of a timer
which has to run at TickFrequency before it is handed to New. The encoder only counts ticks and never checks the real frequency.

The bit timing profile is selected at build time. The default build uses the standard profile. Build with `-tags ws2812slow`
for boards where the standard timing shows all white or wrong colors.
*/
package ws2812

import (
	"errors"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
)

// Errors
var (
	ErrWouldBlock        = errors.New("timer period not elapsed")
	ErrNoHardware        = errors.New("no hardware set. Not initialized?")
	ErrTimerNotMapped    = errors.New("timer device map not set. Not initialized?")
	ErrConfigInitialized = errors.New("config already initialized")
	ErrConfigNotActive   = errors.New("config not initialized")
	ErrWrongFrequency    = errors.New("Wrong Frequency")
	ErrWrongSourceClock  = errors.New("source clock too slow for tick frequency")
	ErrTimerAlreadyUsed  = errors.New("timer already in use")
	ErrPinNotFound       = errors.New("pin not found")
)

const (
	//TickFrequency is the nominal tick rate the timer must run at.
	TickFrequency = 3 * physic.MegaHertz

	//LatchTicks is the number of ticks the line is held low after the last pixel. About 300us at TickFrequency.
	LatchTicks = 900

	ticksPerBit   = 3
	bitsPerByte   = 8
	bytesPerPixel = 3

	//TicksPerPixel is the number of timer ticks one pixel takes on the wire.
	TicksPerPixel = ticksPerBit * bitsPerByte * bytesPerPixel
)

//FrameTicks returns the number of ticks a frame of n pixels consumes including the latch.
func FrameTicks(n int) int {
	return n*TicksPerPixel + LatchTicks
}

//Enable Debug output
var Debug bool

var logger = zerolog.Nop()

//SetLogger sets the logger used for Debug output.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func logOutput(msg string) {
	if Debug {
		logger.Debug().Msg(msg)
	}
}
