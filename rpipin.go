package ws2812

import (
	"github.com/DerLukas15/rpigpio"
	"github.com/pkg/errors"
)

//RPiPin is a Raspberry Pi GPIO used as plain output.
type RPiPin struct {
	pin *rpigpio.Pin
}

var _ Pin = (*RPiPin)(nil)

//NewRPiPin returns pin as output. The GPIO package has to be initialized already, which Config.Initialize does.
func NewRPiPin(pin uint32) (*RPiPin, error) {
	p, err := rpigpio.NewPin(pin)
	if err != nil {
		return nil, errors.Wrap(err, "NewRPiPin")
	}
	p.Mode(rpigpio.ModeOut)
	return &RPiPin{pin: p}, nil
}

//High implements Pin.
func (p *RPiPin) High() error {
	p.pin.Set(1)
	return nil
}

//Low implements Pin.
func (p *RPiPin) Low() error {
	p.pin.Set(0)
	return nil
}
