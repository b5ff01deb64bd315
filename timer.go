package ws2812

//Timer is a free running periodic countdown timer.
/*
Wait must not block. It returns ErrWouldBlock (unwrapped) while the current period is still running and nil exactly once per
elapsed period. The timer has to be started and set to TickFrequency before it is handed to New. The Device never starts, stops
or reconfigures it.

Any other error is treated as an elapsed period. It is reported to the fault hook but never returned from Write.
*/
type Timer interface {
	Wait() error
}

//Pin is a single digital output line.
type Pin interface {
	High() error
	Low() error
}

//wait spins on the timer until the next period boundary. It must never yield or sleep.
func (d *Device) wait() {
	for {
		err := d.timer.Wait()
		if err == nil {
			return
		}
		if err == ErrWouldBlock {
			continue
		}
		d.fault(FaultTimer, err)
		return
	}
}

func (d *Device) high() {
	if err := d.pin.High(); err != nil {
		d.fault(FaultPin, err)
	}
}

func (d *Device) low() {
	if err := d.pin.Low(); err != nil {
		d.fault(FaultPin, err)
	}
}
