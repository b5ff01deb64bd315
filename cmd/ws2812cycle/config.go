package main

import (
	"encoding"
	"io"
	"time"

	"github.com/DerLukas15/ws2812"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Backend selects how the strip is driven.
type Backend string

const (
	// BackendRPi uses the ARM timer and rpigpio. Needs root on a Raspberry Pi.
	BackendRPi Backend = "rpi"
	// BackendPeriph uses a periph.io pin and the host clock.
	BackendPeriph Backend = "periph"
)

// Config is the configuration of ws2812cycle.
type Config struct {
	// Backend is either "rpi" or "periph".
	Backend Backend `toml:"backend"`
	// GPIO is the BCM number of the data pin.
	GPIO int `toml:"gpio"`
	// SourceClock is the clock of the ARM timer in Hz. Only used by the rpi backend, 0 keeps the default.
	SourceClock uint32 `toml:"source_clock"`
	// Pixels is the number of LEDs on the strip.
	Pixels int `toml:"pixels"`
	// Colors are cycled through, written as #rrggbb.
	Colors []string `toml:"colors"`
	// Period is the time each color is shown.
	Period TOMLDuration `toml:"period"`
	// Strip names the strip in the metrics.
	Strip string `toml:"strip"`
	// MetricsAddr enables the prometheus endpoint at /metrics when set.
	MetricsAddr string `toml:"metrics_addr"`

	colors []ws2812.RGB
}

// Validate checks the configuration, fills in defaults and parses the colors.
func (c *Config) Validate() error {
	switch c.Backend {
	case "":
		c.Backend = BackendRPi
	case BackendRPi, BackendPeriph:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if c.GPIO <= 0 {
		return errors.Errorf("invalid gpio %d", c.GPIO)
	}
	if c.Pixels <= 0 {
		return errors.New("no pixels configured")
	}
	if len(c.Colors) == 0 {
		return errors.New("no colors configured")
	}
	c.colors = make([]ws2812.RGB, len(c.Colors))
	for i, s := range c.Colors {
		if err := c.colors[i].UnmarshalText([]byte(s)); err != nil {
			return errors.Wrapf(err, "color %d", i)
		}
	}
	if c.Period == 0 {
		c.Period = TOMLDuration(time.Second)
	}
	if c.Period < 0 {
		return errors.Errorf("negative period %v", time.Duration(c.Period))
	}
	if c.Strip == "" {
		c.Strip = "strip0"
	}
	return nil
}

// RGB returns the parsed colors. Only valid after Validate.
func (c *Config) RGB() []ws2812.RGB {
	return c.colors
}

// TOMLDuration is a duration that can be parsed from TOML.
type TOMLDuration time.Duration

var (
	_ encoding.TextUnmarshaler = (*TOMLDuration)(nil)
	_ encoding.TextMarshaler   = (*TOMLDuration)(nil)
)

func (d *TOMLDuration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = TOMLDuration(duration)
	return nil
}

func (d TOMLDuration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// ParseConfig parses and validates a configuration from a reader.
func ParseConfig(r io.Reader) (*Config, error) {
	var config Config
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &config, nil
}
