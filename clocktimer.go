package ws2812

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

//ClockTimer is a Timer on top of the monotonic clock of the host. It is meant for development hosts without a hardware
//timer, the resolution of the host clock and the scheduler make the output too jittery for real LEDs at TickFrequency.
//
//Like a hardware timer flag, a missed period is only reported once.
type ClockTimer struct {
	period time.Duration
	next   time.Time
}

var _ Timer = (*ClockTimer)(nil)

//NewClockTimer returns a running ClockTimer ticking at frequency.
func NewClockTimer(frequency physic.Frequency) *ClockTimer {
	period := frequency.Period()
	if period <= 0 {
		period = time.Nanosecond
	}
	return &ClockTimer{
		period: period,
		next:   time.Now().Add(period),
	}
}

//Wait implements Timer.
func (t *ClockTimer) Wait() error {
	now := time.Now()
	if now.Before(t.next) {
		return ErrWouldBlock
	}
	t.next = t.next.Add(t.period)
	if !now.Before(t.next) {
		missed := now.Sub(t.next)/t.period + 1
		t.next = t.next.Add(missed * t.period)
	}
	return nil
}

//Period returns the tick period.
func (t *ClockTimer) Period() time.Duration {
	return t.period
}
