package ws2812

import (
	"fmt"
	"os"

	"github.com/DerLukas15/rpimemmap"
)

const (
	registerARMTimerBusOffset uint32 = 0x0000b000

	//register offsets
	registerOffsetTimerLoad   uint32 = 0x400 // Load
	registerOffsetTimerValue  uint32 = 0x404 // Current value
	registerOffsetTimerCtl    uint32 = 0x408 // Control
	registerOffsetTimerIRQClr uint32 = 0x40c // IRQ clear/ack
	registerOffsetTimerRawIRQ uint32 = 0x410 // Raw IRQ
	registerOffsetTimerReload uint32 = 0x418 // Reload
	registerOffsetTimerPreDiv uint32 = 0x41c // Pre divider

	//Ctl register
	registerValueTimerCtl32Bit  uint32 = (1 << 1) // 32 bit counter
	registerValueTimerCtlEnable uint32 = (1 << 7) // Enable timer

	//Raw IRQ register
	registerValueTimerRawIRQPending uint32 = (1 << 0) // Set once the counter reached zero
)

//helper functions for the timer register
var (
	registerValueTimerCtlPrescale = func(val uint32) uint32 { return ((val & 0x3) << 2) }  // 0: /1, 1: /16, 2: /256
	registerValueTimerPreDiv      = func(val uint32) uint32 { return ((val & 0x3ff) << 0) } // timer clock = source / (val+1)
)

var timerRegisterMem rpimemmap.MemMap //stores reference to the arm timer device

//ARMTimer is the periodic ARM timer (SP804) of the Raspberry Pi. It ticks once Config.Initialize has been called.
type ARMTimer struct{}

var _ Timer = ARMTimer{}

//Wait implements Timer. It polls the raw interrupt flag and acknowledges it.
func (ARMTimer) Wait() error {
	if timerRegisterMem == nil {
		return ErrTimerNotMapped
	}
	if (*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerRawIRQ) & registerValueTimerRawIRQPending) == 0 {
		return ErrWouldBlock
	}
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerIRQClr) = 1
	return nil
}

//timerLoadValue returns the load value for a period of sourceClock/tickFrequency timer cycles.
func timerLoadValue(sourceClock, tickFrequency uint32) (uint32, error) {
	if tickFrequency == 0 || sourceClock < 2*tickFrequency {
		return 0, ErrWrongSourceClock
	}
	// The counter reloads after reaching zero, a period is load+1 cycles.
	return (sourceClock+tickFrequency/2)/tickFrequency - 1, nil
}

//Setup the timer for a periodic tick at tickFrequency
func timerSetup(sourceClock, tickFrequency uint32) error {
	if timerRegisterMem == nil {
		return ErrTimerNotMapped
	}
	load, err := timerLoadValue(sourceClock, tickFrequency)
	if err != nil {
		return err
	}
	stopTimer()
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerPreDiv) = registerValueTimerPreDiv(0)
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerLoad) = load
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerReload) = load
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerIRQClr) = 1
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerCtl) = registerValueTimerCtl32Bit | registerValueTimerCtlPrescale(0) | registerValueTimerCtlEnable
	logOutput(fmt.Sprintf("Timer running. load: %d, value: %d", load, *rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerValue)))
	return nil
}

//stops the timer
func stopTimer() {
	if timerRegisterMem == nil {
		return
	}
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerCtl) &= ^registerValueTimerCtlEnable
	*rpimemmap.Reg32(timerRegisterMem, registerOffsetTimerIRQClr) = 1
}

//Initialize the timer device and get virtual address
func initializeTimer() error {
	if timerRegisterMem != nil {
		//Already initialized
		logOutput("Timer already initialized. Skipping")
		return nil
	}
	mem := rpimemmap.NewPeripheral(uint32(os.Getpagesize()))
	err := mem.Map(registerARMTimerBusOffset, rpimemmap.MemDevDefault, 0)
	if err != nil {
		return err
	}
	timerRegisterMem = mem
	logOutput("Timer: " + timerRegisterMem.String())
	return nil
}

//cleanup the mapping to the timer device
func cleanupTimer() error {
	if timerRegisterMem == nil {
		return nil
	}
	err := timerRegisterMem.Unmap()
	if err != nil {
		return err
	}
	timerRegisterMem = nil
	return nil
}
