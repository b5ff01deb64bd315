package ws2812

import (
	"fmt"

	"github.com/DerLukas15/rpigpio"
	"github.com/DerLukas15/rpihardware"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/physic"
)

//Config brings up a Device on a Raspberry Pi using the ARM timer as tick source.
/*
Only one Config can be initialized at a time since there is only one ARM timer. The Device returned by Initialize is valid
until Stop is called.

Settings can only be changed while the Config is not initialized.
*/
type Config struct {
	pinNum uint32
	pin    *RPiPin

	// Frequency the ARM timer is clocked with. This is the core clock on most models.
	sourceClock uint32
	// Tick frequency
	tickFrequency physic.Frequency

	options []Option

	initialized bool
	device      *Device
}

var (
	timerActive bool                  // Set once a config is active
	curHardware *rpihardware.Hardware // Set during initialize
)

const (
	defaultSourceClock uint32 = 250000000

	minTickFrequency = 2400 * physic.KiloHertz
	maxTickFrequency = 3600 * physic.KiloHertz
)

//NewConfig returns a new Config for the GPIO pin.
/*
Default TickFrequency: 3 MHz

Default SourceClock: 250 MHz
*/
func NewConfig(pin uint32) *Config {
	return &Config{
		pinNum:        pin,
		sourceClock:   defaultSourceClock,
		tickFrequency: TickFrequency,
	}
}

//SetTickFrequency sets the tick rate of the timer. Valid values are between 2.4 MHz and 3.6 MHz.
//Anything else than 3 MHz stretches or shrinks every pulse accordingly.
func (c *Config) SetTickFrequency(frequency physic.Frequency) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetTickFrequency")
	}
	if frequency < minTickFrequency || frequency > maxTickFrequency {
		return errors.Wrap(ErrWrongFrequency, "config SetTickFrequency")
	}
	c.tickFrequency = frequency
	return nil
}

//SetSourceClock sets the clock in Hz the ARM timer runs with. Default is 250 MHz.
func (c *Config) SetSourceClock(hz uint32) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetSourceClock")
	}
	if _, err := timerLoadValue(hz, c.tickHz()); err != nil {
		return errors.Wrap(err, "config SetSourceClock")
	}
	c.sourceClock = hz
	return nil
}

//SetOptions sets the Options passed to New during Initialize.
func (c *Config) SetOptions(opts ...Option) error {
	if c.initialized {
		return errors.Wrap(ErrConfigInitialized, "config SetOptions")
	}
	c.options = opts
	return nil
}

//Device returns the Device of an initialized Config.
func (c *Config) Device() (*Device, error) {
	if !c.initialized {
		return nil, errors.Wrap(ErrConfigNotActive, "config Device")
	}
	return c.device, nil
}

func (c *Config) tickHz() uint32 {
	return uint32(c.tickFrequency / physic.Hertz)
}

//Initialize activates a Config and returns the Device. If another Config is already active, an error is returned.
func (c *Config) Initialize() (*Device, error) {
	if c.initialized {
		return c.device, nil
	}
	if timerActive {
		return nil, errors.Wrap(ErrTimerAlreadyUsed, "config initialize")
	}
	//Initialize GPIO. Does not matter if already done.
	logOutput("Initializing GPIO package")
	err := rpigpio.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "config initialize")
	}
	logOutput("Done with GPIO package")
	curHardware, err = rpihardware.Check()
	if err != nil {
		return nil, errors.Wrap(err, "config initialize")
	}
	if curHardware == nil {
		return nil, errors.Wrap(ErrNoHardware, "config initialize")
	}
	logOutput(fmt.Sprintf("Hardware type: %v", curHardware.RPiType))
	c.pin, err = NewRPiPin(c.pinNum)
	if err != nil {
		return nil, errors.Wrap(err, "config initialize")
	}
	logOutput("Initializing timer peripheral")
	err = initializeTimer()
	if err != nil {
		return nil, errors.Wrap(err, "config initialize")
	}
	err = timerSetup(c.sourceClock, c.tickHz())
	if err != nil {
		cleanupTimer()
		return nil, errors.Wrap(err, "config initialize")
	}
	logOutput("Done timer")
	timerActive = true
	c.device = New(ARMTimer{}, c.pin, c.options...)
	c.initialized = true
	return c.device, nil
}

//Stop will disable the Config so that another Config can be initialized.
//The pin is left low as output.
func (c *Config) Stop() error {
	if !c.initialized {
		return nil
	}
	c.pin.Low()
	stopTimer()
	err := cleanupTimer()
	if err != nil {
		return errors.Wrap(err, "config Stop")
	}
	timerActive = false
	c.initialized = false
	c.device = nil
	return nil
}
