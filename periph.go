package ws2812

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

//PeriphPin adapts a periph.io output pin.
type PeriphPin struct {
	p gpio.PinOut
}

var _ Pin = (*PeriphPin)(nil)

//NewPeriphPin wraps p. p has to be usable as output already.
func NewPeriphPin(p gpio.PinOut) *PeriphPin {
	return &PeriphPin{p: p}
}

//PeriphPinByName initializes the periph.io host drivers and looks up the pin by name, e.g. "GPIO18".
func PeriphPinByName(name string) (*PeriphPin, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "PeriphPinByName")
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.Wrap(ErrPinNotFound, name)
	}
	logOutput("Using periph pin " + p.String())
	return NewPeriphPin(p), nil
}

//High implements Pin.
func (p *PeriphPin) High() error {
	return p.p.Out(gpio.High)
}

//Low implements Pin.
func (p *PeriphPin) Low() error {
	return p.p.Out(gpio.Low)
}

//String returns the name of the wrapped pin.
func (p *PeriphPin) String() string {
	return p.p.String()
}
