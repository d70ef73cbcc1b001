package types

import (
	"errors"
	"time"
)

// Period is a named time range for dashboard analytics.
type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Periods returns all valid periods.
func Periods() []Period {
	return []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}
}

var ErrPeriodInvalid = errors.New("the specified period is invalid, must be one of: today, week, month, quarter, year")

// Valid reports whether p is one of the defined periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}

	return false
}

// Window resolves the period to the half-open interval [from, until)
// containing the reference time.
//
// "week" is a rolling 7 days ending at the reference time, all other
// periods are calendar aligned: the current day, month, 3-month quarter
// block or year.
func (p Period) Window(now time.Time) (from, until time.Time, err error) {
	now = now.In(time.UTC)

	switch p {
	case PeriodToday:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		until = from.AddDate(0, 0, 1)
	case PeriodWeek:
		from = now.AddDate(0, 0, -7)
		until = now
	case PeriodMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		until = from.AddDate(0, 1, 0)
	case PeriodQuarter:
		// Quarter blocks are Jan-Mar, Apr-Jun, Jul-Sep, Oct-Dec
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		from = time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, time.UTC)
		until = from.AddDate(0, 3, 0)
	case PeriodYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		until = from.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}, ErrPeriodInvalid
	}

	return from, until, nil
}
