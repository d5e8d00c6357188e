package pcf8523

// SetTimeAlarm enables the alarm interrupt and arms the hour and minute alarm fields. The alarm fires at the next
// hour:minute, gated by whatever day or weekday alarm is also armed.
func (d *Device) SetTimeAlarm(hour, minute int) error {
	if err := d.setBits(Control1, alarmInterruptEnable); err != nil {
		return err
	}
	for _, r := range [...]Register{HourAlarm, MinuteAlarm} {
		if err := d.WriteRegister(r, 0); err != nil {
			return err
		}
	}
	if err := d.WriteRegister(HourAlarm, ToBCD(hour)); err != nil {
		return err
	}
	return d.WriteRegister(MinuteAlarm, ToBCD(minute))
}

// SetDayAlarm arms the day of month alarm together with a time alarm, so the alarm fires only when both match.
func (d *Device) SetDayAlarm(day, hour, minute int) error {
	if err := d.armAlarm(DayAlarm, day); err != nil {
		return err
	}
	return d.SetTimeAlarm(hour, minute)
}

// SetWeekdayAlarm arms the weekday alarm. Fields not in use should be disarmed by the caller with DisableAlarm first;
// the driver does not keep the alarm kinds exclusive.
func (d *Device) SetWeekdayAlarm(weekday Weekday) error {
	return d.armAlarm(WeekdayAlarm, int(weekday))
}

func (d *Device) armAlarm(r Register, v int) error {
	if err := d.setBits(Control1, alarmInterruptEnable); err != nil {
		return err
	}
	if err := d.WriteRegister(r, 0); err != nil {
		return err
	}
	return d.WriteRegister(r, ToBCD(v))
}

// DisableAlarm turns off the alarm interrupt and disarms all four alarm fields. The alarm flag is left as is.
func (d *Device) DisableAlarm() error {
	if err := d.clearBits(Control1, alarmInterruptEnable); err != nil {
		return err
	}
	for _, r := range [...]Register{MinuteAlarm, HourAlarm, DayAlarm, WeekdayAlarm} {
		if err := d.WriteRegister(r, alarmDisable); err != nil {
			return err
		}
	}
	return nil
}
