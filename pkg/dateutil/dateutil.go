package dateutil

import (
	"time"
)

// MonthStart returns the first instant of the month containing date
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// AddMonths adds a number of months to the start of date's month.
// Anchoring on day 1 avoids AddDate normalizing Jan 31 + 1 month into March.
func AddMonths(date time.Time, months int) time.Time {
	return MonthStart(date).AddDate(0, months, 0)
}

// MonthLabel returns a short calendar label such as "Mar 2027" for the
// projection month offset from start.
func MonthLabel(start time.Time, offset int) string {
	return AddMonths(start, offset).Format("Jan 2006")
}

// MonthsBetween returns the whole number of calendar months from one date to another.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// DateForMonth parses a YYYY-MM string into the first day of that month (UTC).
func DateForMonth(value string) (time.Time, error) {
	return time.Parse("2006-01", value)
}
