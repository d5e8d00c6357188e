package pcf8523

import "time"

// EnableCountdownTimer starts timer A or B counting count periods of freq. When it reaches zero the timer raises its
// flag (FlagCountdownA or FlagCountdownB), which must be cleared with ClearInterruptFlag.
func (d *Device) EnableCountdownTimer(which Timer, freq TimerFrequency, count uint8) error {
	pulse, enable := uint8(timerAPulseInterrupt), uint8(timerAInterruptEnable)
	freqReg, valueReg := TimerAFreqControl, TimerAValue
	if which == TimerB {
		pulse, enable = timerBPulseInterrupt, timerBInterruptEnable
		freqReg, valueReg = TimerBFreqControl, TimerBValue
	}

	if err := d.setBits(ClkOutControl, pulse); err != nil {
		return err
	}
	if err := d.setBits(Control2, enable); err != nil {
		return err
	}
	if err := d.WriteRegister(freqReg, uint8(freq)); err != nil {
		return err
	}
	return d.WriteRegister(valueReg, count)
}

// InterruptFlags returns the interrupt flags currently set in Control2.
func (d *Device) InterruptFlags() (Flag, error) {
	c, err := d.readRaw(Control2)
	if err != nil {
		return 0, err
	}
	return Flag(c) & flagMask, nil
}

// ClearInterruptFlag clears the given flags, leaving the rest of Control2 untouched, and waits for the register to
// settle.
func (d *Device) ClearInterruptFlag(f Flag) error {
	if err := d.clearBits(Control2, uint8(f&flagMask)); err != nil {
		return err
	}
	time.Sleep(settleDelay)
	return nil
}

// ClearAllInterruptFlags clears the countdown A, countdown B and alarm flags, one transaction each.
func (d *Device) ClearAllInterruptFlags() error {
	for _, f := range [...]Flag{FlagCountdownA, FlagCountdownB, FlagAlarm} {
		if err := d.ClearInterruptFlag(f); err != nil {
			return err
		}
	}
	return nil
}
