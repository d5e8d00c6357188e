package pcf8523

const (
	SecondsPerDay         = 86400
	SecondsFrom1970To2000 = 946684800  // unix time of 2000-01-01 00:00:00
	SecondsFrom1970To2020 = 1577836800 // unix time of 2020-01-01 00:00:00
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysSince2000 returns the number of days from 2000-01-01 to the given date, year being 0-99. Any year divisible by
// four counts as a leap year, which holds for 2001 through 2099.
func DaysSince2000(year, month, day int) int {
	days := day
	for i := 1; i < month; i++ {
		days += daysInMonth[i-1]
	}
	if month > 2 && year%4 == 0 {
		days++
	}
	return days + 365*year + (year+3)/4 - 1
}

// TotalSeconds combines a day count and a time of day into seconds.
func TotalSeconds(days, hours, minutes, seconds int) int64 {
	return ((int64(days)*24+int64(hours))*60+int64(minutes))*60 + int64(seconds)
}

// Unix1970 converts days since 2000 and a time of day to seconds since 1970-01-01.
func Unix1970(days, hours, minutes, seconds int) uint32 {
	return uint32(TotalSeconds(days, hours, minutes, seconds) + SecondsFrom1970To2000)
}

// SecondsSince2020 returns the seconds elapsed from 2020-01-01 00:00:00 to the given date and time. year is 0-99.
// Dates before 2020 wrap around.
func SecondsSince2020(year, month, day, hour, minute, second int) uint32 {
	return Unix1970(DaysSince2000(year, month, day), hour, minute, second) - SecondsFrom1970To2020
}
