package pcf8523

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSetTimeAlarm(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice()
	bus.set(Control1, 0x80)

	c.Assert(d.SetTimeAlarm(7, 45), qt.IsNil)
	c.Assert(bus.writes, qt.DeepEquals, []regWrite{
		{Control1, 0x82},
		{HourAlarm, 0x00},
		{MinuteAlarm, 0x00},
		{HourAlarm, 0x07},
		{MinuteAlarm, 0x45},
	})
}

func TestSetDayAlarm(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice()
	bus.set(Control1, 0x80)

	c.Assert(d.SetDayAlarm(15, 6, 30), qt.IsNil)
	c.Assert(bus.reg(DayAlarm), qt.Equals, ToBCD(15))
	c.Assert(bus.reg(HourAlarm), qt.Equals, ToBCD(6))
	c.Assert(bus.reg(MinuteAlarm), qt.Equals, ToBCD(30))
	c.Assert(bus.reg(Control1)&0x02, qt.Equals, uint8(0x02))
	c.Assert(bus.reg(Control1)&0x80, qt.Equals, uint8(0x80))
	c.Assert(bus.writesTo(DayAlarm), qt.DeepEquals, []uint8{0x00, 0x15})
}

func TestSetWeekdayAlarm(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice()

	c.Assert(d.SetWeekdayAlarm(Friday), qt.IsNil)
	c.Assert(bus.writes, qt.DeepEquals, []regWrite{
		{Control1, 0x02},
		{WeekdayAlarm, 0x00},
		{WeekdayAlarm, 0x05},
	})
}

func TestDisableAlarm(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice()
	bus.set(Control1, 0x80|0x02)
	bus.set(Control2, uint8(FlagAlarm))

	c.Assert(d.DisableAlarm(), qt.IsNil)
	c.Assert(bus.reg(Control1), qt.Equals, uint8(0x80))
	for _, r := range []Register{MinuteAlarm, HourAlarm, DayAlarm, WeekdayAlarm} {
		c.Assert(bus.reg(r), qt.Equals, uint8(0x80))
	}
	c.Assert(bus.reg(Control2), qt.Equals, uint8(FlagAlarm))
}

func TestAlarmBusError(t *testing.T) {
	c := qt.New(t)
	d, bus := newTestDevice()
	// read of Control1 succeeds, its write fails
	bus.failAfter = 2

	c.Assert(d.SetDayAlarm(1, 2, 3), qt.Equals, errNack)
	c.Assert(bus.writes, qt.HasLen, 0)
}
