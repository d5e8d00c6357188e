package pcf8523

// Address is the fixed I2C address of the PCF8523.
const Address = 0x68

// Register is the address of one of the PCF8523's internal registers.
type Register uint8

const (
	Control1          Register = 0x00 // Control and status register 1
	Control2          Register = 0x01 // Control and status register 2
	Control3          Register = 0x02 // Control and status register 3
	Seconds           Register = 0x03 // Seconds, bit 7 is the oscillator stop flag
	Minutes           Register = 0x04 // Minutes
	Hours             Register = 0x05 // Hours
	Days              Register = 0x06 // Day of month
	Weekdays          Register = 0x07 // Day of week
	Months            Register = 0x08 // Month
	Years             Register = 0x09 // Year within the century
	MinuteAlarm       Register = 0x0A // Minute alarm
	HourAlarm         Register = 0x0B // Hour alarm
	DayAlarm          Register = 0x0C // Day alarm
	WeekdayAlarm      Register = 0x0D // Weekday alarm
	Offset            Register = 0x0E // Offset register
	ClkOutControl     Register = 0x0F // Timer and CLKOUT control register
	TimerAFreqControl Register = 0x10 // Timer A source clock frequency control
	TimerAValue       Register = 0x11 // Timer A value (number clock periods)
	TimerBFreqControl Register = 0x12 // Timer B source clock frequency control
	TimerBValue       Register = 0x13 // Timer B value (number clock periods)

	Time   = Seconds // Time registers starting with seconds
	Status = Seconds // Status register, also holds seconds
)

// IsBCD reports whether the register holds a BCD encoded time or date field. Every other register is a raw bit
// pattern.
func (r Register) IsBCD() bool {
	return r >= Seconds && r <= Years
}

// Control and alarm register bits.
const (
	// statusBit is the top bit of the seconds, minutes and hours registers. It is never set by a time write.
	statusBit = 0x80

	// softResetPattern written to Control1 resets every register to its default.
	softResetPattern = 0x58

	// Control1: 12.5pF, oscillator running, 24 hour mode, second/alarm/correction interrupts off.
	control1Default = 0x80
	// Control2: every interrupt flag cleared, every interrupt disabled.
	control2Default = 0x00
	// Control3: battery switch-over in standard mode, power management flags cleared.
	control3Default = 0x80
	// ClkOutControl: CLKOUT disabled, timers A and B disabled.
	clkOutDefault = 0xF8

	// alarmInterruptEnable (AIE) in Control1.
	alarmInterruptEnable = 0x02

	// alarmDisable (AEN_x) in each alarm register; a cleared bit means the field takes part in the match.
	alarmDisable = 0x80

	// powerManagementMask covers the PM bits of Control3.
	powerManagementMask = 0xE0
	// batteryLowFlag (BLF) in Control3.
	batteryLowFlag = 0x04

	// Timer enable bits in ClkOutControl (TAC=01 countdown, TBC=1).
	timerAPulseInterrupt = 0x02
	timerBPulseInterrupt = 0x01

	// Countdown interrupt enable bits in Control2 (CTAIE, CTBIE).
	timerAInterruptEnable = 0x02
	timerBInterruptEnable = 0x01
)

// Weekday as counted by the chip, Sunday first.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Month as counted by the chip, January is 1.
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// TimerFrequency selects the source clock a countdown timer decrements at.
type TimerFrequency uint8

const (
	TimerSeconds TimerFrequency = 0x02 // 1 Hz
	TimerMinutes TimerFrequency = 0x03 // 1/60 Hz
	TimerHours   TimerFrequency = 0x07 // 1/3600 Hz
)

// Timer selects one of the two countdown timers.
type Timer uint8

const (
	TimerA Timer = iota
	TimerB
)

// Flag is a set of interrupt flags in Control2.
type Flag uint8

const (
	FlagWatchdogA  Flag = 0x80 // WTAF
	FlagCountdownA Flag = 0x40 // CTAF
	FlagCountdownB Flag = 0x20 // CTBF
	FlagSecond     Flag = 0x10 // SF
	FlagAlarm      Flag = 0x08 // AF

	flagMask = FlagWatchdogA | FlagCountdownA | FlagCountdownB | FlagSecond | FlagAlarm
)

// Has reports whether every flag in o is set in f.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}
