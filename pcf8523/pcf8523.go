// Package pcf8523 implements a driver for the PCF8523 Real-Time Clock (RTC): reading and writing the time and date,
// time/day/weekday alarms, countdown timers A and B, interrupt flags, and conversion of the chip's calendar to epoch
// seconds.
//
// The year register holds two digits, so the driver is valid for 2001 through 2099.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8523.pdf
package pcf8523

import (
	"errors"
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

// ErrNoDevice is returned by Configure when nothing acknowledges the device address.
var ErrNoDevice = errors.New("pcf8523: device not found")

// settleDelay is how long the chip needs after a soft reset or a flag clear.
const settleDelay = 5 * time.Millisecond

// Device is a PCF8523 on an I2C bus. It holds no lock; callers sharing one Device between goroutines must serialize
// access themselves.
type Device struct {
	bus     drivers.I2C
	Address uint16
	w       [2]byte
}

// Config holds the settings applied by Configure.
type Config struct {
	// Address defaults to Address (0x68).
	Address uint16
}

func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: Address,
	}
}

// Configure soft resets the chip, then sets 24 hour mode, disables the periodic interrupts, CLKOUT and both timers,
// enables battery switch-over, and clears every pending flag. The register writes are not checked: only the final
// probe of the device address decides the result, and ErrNoDevice is returned if the chip does not acknowledge.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if d.Address == 0 {
		d.Address = Address
	}

	d.SoftReset()

	defaults := [...]struct {
		reg Register
		val uint8
	}{
		{Control1, control1Default},
		{Control2, control2Default},
		{Control3, control3Default},
		{ClkOutControl, clkOutDefault},
	}
	for _, r := range defaults {
		d.WriteRegister(r.reg, r.val)
	}

	if err := d.probe(); err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	return nil
}

// Connected reports whether the chip acknowledges its address.
func (d *Device) Connected() bool {
	return d.probe() == nil
}

// SoftReset returns every register to its power-on default and waits for the chip to settle.
func (d *Device) SoftReset() error {
	if err := d.WriteRegister(Control1, softResetPattern); err != nil {
		return err
	}
	time.Sleep(settleDelay)
	return nil
}

// SetTime writes hour (0-23), minute and second. The top bit of each register is always written as zero.
func (d *Device) SetTime(hour, minute, second int) error {
	return d.writeFields([]field{
		{Seconds, second},
		{Minutes, minute},
		{Hours, hour},
	})
}

// SetDate writes the day of month, day of week, month and the year within the century (0-99).
func (d *Device) SetDate(day int, weekday Weekday, month Month, year int) error {
	return d.writeFields([]field{
		{Days, day},
		{Weekdays, int(weekday)},
		{Months, int(month)},
		{Years, year},
	})
}

type field struct {
	reg Register
	val int
}

func (d *Device) writeFields(fields []field) error {
	for _, f := range fields {
		if err := d.WriteRegister(f.reg, ToBCD(f.val)&^statusBit); err != nil {
			return err
		}
	}
	return nil
}

// Set writes t to the clock, making sure the oscillator runs in 24 hour mode. Only years 2000 through 2099 can be
// stored.
func (d *Device) Set(t time.Time) error {
	ctrl, err := d.ReadRegister(Control1)
	if err != nil {
		return err
	}
	// do not change cap_sel or second/alarm/correction interrupts
	// ensure RTC is running and 24-hour mode is selected
	ctrl &= 0b1000_0111
	if err := d.WriteRegister(Control1, ctrl); err != nil {
		return err
	}

	if err := d.SetTime(t.Hour(), t.Minute(), t.Second()); err != nil {
		return err
	}
	return d.SetDate(t.Day(), Weekday(t.Weekday()), Month(t.Month()), t.Year()-2000)
}

// Now reads all time registers in one transaction and returns the time in UTC.
func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	d.w[0] = uint8(Time)
	if err := d.bus.Tx(d.Address, d.w[:1], buf[:]); err != nil {
		return time.Time{}, err
	}

	seconds := FromBCD(buf[0] & 0x7F)
	minute := FromBCD(buf[1] & 0x7F)
	hour := FromBCD(buf[2] & 0x3F)
	day := FromBCD(buf[3] & 0x3F)
	// we don't need to read the weekday
	month := time.Month(FromBCD(buf[5] & 0x1F))
	year := FromBCD(buf[6]) + 2000

	return time.Date(year, month, day, hour, minute, seconds, 0, time.UTC), nil
}

// UnixTime reads the clock register by register and returns seconds since 1970-01-01 00:00:00. Unlike Now, the
// oscillator stop bit is not masked from Seconds, so after a power loss (see LostPower) the result is 80 seconds
// ahead until the clock is set again.
func (d *Device) UnixTime() (uint32, error) {
	var v [6]int
	for i, r := range [...]Register{Years, Months, Days, Hours, Minutes, Seconds} {
		b, err := d.ReadRegister(r)
		if err != nil {
			return 0, err
		}
		v[i] = int(b)
	}
	return Unix1970(DaysSince2000(v[0], v[1], v[2]), v[3], v[4], v[5]), nil
}

// SetFromBuildStamp sets the clock from compiler style date and time strings such as "Dec 26 2009" and
// "12:34:56". The weekday is written as Sunday.
func (d *Device) SetFromBuildStamp(date, clock string) error {
	day, err := time.Parse("Jan _2 2006", date)
	if err != nil {
		return err
	}
	tod, err := time.Parse("15:04:05", clock)
	if err != nil {
		return err
	}
	if err := d.SetTime(tod.Hour(), tod.Minute(), tod.Second()); err != nil {
		return err
	}
	return d.SetDate(day.Day(), Sunday, Month(day.Month()), day.Year()%100)
}

// LostPower reports whether the oscillator stopped since the clock was last set.
func (d *Device) LostPower() (bool, error) {
	s, err := d.readRaw(Status)
	if err != nil {
		return false, err
	}
	return s&statusBit != 0, nil
}

// Initialized reports whether the power management bits have been moved out of their reset state.
func (d *Device) Initialized() (bool, error) {
	c, err := d.ReadRegister(Control3)
	if err != nil {
		return false, err
	}
	return c&powerManagementMask != powerManagementMask, nil
}

// BatteryLow reports the battery low flag. Detection must be enabled in Control3.
func (d *Device) BatteryLow() (bool, error) {
	c, err := d.ReadRegister(Control3)
	if err != nil {
		return false, err
	}
	return c&batteryLowFlag != 0, nil
}

// ReadRegister reads one register. Time and date registers (Seconds through Years) are decoded from BCD, every
// other register is returned as is. If the chip sends less than a byte without a bus error the result is zero.
func (d *Device) ReadRegister(r Register) (uint8, error) {
	b, err := d.readRaw(r)
	if err != nil {
		return 0, err
	}
	if r.IsBCD() {
		return uint8(FromBCD(b)), nil
	}
	return b, nil
}

// WriteRegister writes one raw byte to a register.
func (d *Device) WriteRegister(r Register, v uint8) error {
	d.w[0] = uint8(r)
	d.w[1] = v
	return d.bus.Tx(d.Address, d.w[:2], nil)
}

func (d *Device) readRaw(r Register) (uint8, error) {
	buf := [1]byte{}
	d.w[0] = uint8(r)
	if err := d.bus.Tx(d.Address, d.w[:1], buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// setBits is a read-modify-write that ORs mask into a raw register.
func (d *Device) setBits(r Register, mask uint8) error {
	v, err := d.readRaw(r)
	if err != nil {
		return err
	}
	return d.WriteRegister(r, v|mask)
}

// clearBits is a read-modify-write that clears mask in a raw register.
func (d *Device) clearBits(r Register, mask uint8) error {
	v, err := d.readRaw(r)
	if err != nil {
		return err
	}
	return d.WriteRegister(r, v&^mask)
}

func (d *Device) probe() error {
	return d.bus.Tx(d.Address, nil, nil)
}
