package datagen

import "time"

// Date returns a UTC midnight time for a calendar day. All generated dates
// are day-granular.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextBusinessDay advances t forward past Saturday and Sunday.
func NextBusinessDay(t time.Time) time.Time {
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// DaysBetween returns the number of whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 1)
}

// NextMonth returns the first day of the month after t's month.
func NextMonth(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// MonthKey formats t as "YYYY-MM" for monthly rollup keys.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthsSince returns the number of whole calendar months from a to b,
// negative when b precedes a.
func MonthsSince(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
