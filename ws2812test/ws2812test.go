// Package ws2812test provides a simulated timer and a recording pin to check the waveform of a ws2812.Device without
// hardware.
package ws2812test

import (
	"github.com/DerLukas15/ws2812"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
)

// ErrInjected is returned by Timer and Pin when an error is injected and no other error was set.
var ErrInjected = errors.New("ws2812test: injected error")

// Timer is a simulated periodic timer. Every Wait after Latency would-block polls is a tick.
type Timer struct {
	// Latency is the number of times Wait returns ws2812.ErrWouldBlock before a tick.
	Latency int
	// FailEvery makes every n-th tick return Err instead of nil. The tick still counts.
	FailEvery int
	// Err is the error returned for failed ticks, ErrInjected if nil.
	Err error

	ticks   int
	polls   int
	pending int
}

var _ ws2812.Timer = (*Timer)(nil)

// Wait implements ws2812.Timer.
func (t *Timer) Wait() error {
	if t.pending < t.Latency {
		t.pending++
		t.polls++
		return ws2812.ErrWouldBlock
	}
	t.pending = 0
	t.ticks++
	if t.FailEvery > 0 && t.ticks%t.FailEvery == 0 {
		if t.Err != nil {
			return t.Err
		}
		return ErrInjected
	}
	return nil
}

// Ticks returns the number of elapsed ticks.
func (t *Timer) Ticks() int {
	return t.ticks
}

// Polls returns the number of would-block answers.
func (t *Timer) Polls() int {
	return t.polls
}

// Edge is one level change of the line.
type Edge struct {
	Tick  int
	Level gpio.Level
}

// Pin records every level change together with the tick count of its Timer.
type Pin struct {
	// FailEvery makes every n-th call to High or Low fail with Err. The level is not changed then.
	FailEvery int
	// Err is the error returned for failed calls, ErrInjected if nil.
	Err error

	timer *Timer
	level gpio.Level
	calls int
	start int
	edges []Edge
}

var _ ws2812.Pin = (*Pin)(nil)

// NewPin returns a Pin stamping edges with the ticks of t. The line starts high so that the idle level set by ws2812.New
// is visible.
func NewPin(t *Timer) *Pin {
	return &Pin{timer: t, level: gpio.High}
}

// High implements ws2812.Pin.
func (p *Pin) High() error {
	return p.set(gpio.High)
}

// Low implements ws2812.Pin.
func (p *Pin) Low() error {
	return p.set(gpio.Low)
}

func (p *Pin) set(l gpio.Level) error {
	p.calls++
	if p.FailEvery > 0 && p.calls%p.FailEvery == 0 {
		if p.Err != nil {
			return p.Err
		}
		return ErrInjected
	}
	if l != p.level {
		p.level = l
		p.edges = append(p.edges, Edge{Tick: p.timer.Ticks(), Level: l})
	}
	return nil
}

// Level returns the current level of the line.
func (p *Pin) Level() gpio.Level {
	return p.level
}

// Calls returns the number of High and Low calls.
func (p *Pin) Calls() int {
	return p.calls
}

// Reset drops the recorded edges and the call count. The next Trace starts at the current tick.
func (p *Pin) Reset() {
	p.edges = nil
	p.calls = 0
	p.start = p.timer.Ticks()
}

// Trace returns the edges recorded since the last Reset with ticks relative to it.
func (p *Pin) Trace() Trace {
	tr := Trace{
		Edges: make([]Edge, len(p.edges)),
		End:   p.timer.Ticks() - p.start,
	}
	for i, e := range p.edges {
		tr.Edges[i] = Edge{Tick: e.Tick - p.start, Level: e.Level}
	}
	return tr
}
