// tick.go

// Package tick decides how densely a time axis is labeled.
//
// The policy is a step function of the number of dates on the axis: short
// ranges get daily ticks and long ranges get monthly or yearly ticks, which
// keeps roughly 4 to 15 labels visible at every breakpoint.
package tick

import (
	"math"
	"time"

	"bitbucket.org/tebeka/strftime"
)

// Interval is the spacing between two ticks on a time axis.
type Interval int

const (
	Day Interval = iota
	FourDays
	Week
	Month
	TwoMonths
	Year
)

func (iv Interval) String() string {
	switch iv {
	case Day:
		return "day"
	case FourDays:
		return "4 days"
	case Week:
		return "week"
	case Month:
		return "month"
	case TwoMonths:
		return "2 months"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// Date label layouts in strftime notation.
const (
	DayLayout   = "%y-%m-%d"
	MonthLayout = "%y %b"
	YearLayout  = "%Y"
)

// IntervalFor returns the tick interval for an axis showing dateCount dates.
func IntervalFor(dateCount int) Interval {
	switch {
	case dateCount <= 15:
		return Day
	case dateCount <= 4*15:
		return FourDays
	case dateCount <= 7*15:
		return Week
	case dateCount <= 15*30:
		return Month
	case dateCount <= 15*60:
		return TwoMonths
	default:
		return Year
	}
}

// LayoutFor returns the strftime layout of tick labels for dateCount dates.
func LayoutFor(dateCount int) string {
	return IntervalFor(dateCount).Layout()
}

// FormatFor returns the tick label formatter for dateCount dates.
func FormatFor(dateCount int) func(time.Time) string {
	return Formatter(LayoutFor(dateCount))
}

// Layout returns the label layout that goes with the interval.
func (iv Interval) Layout() string {
	switch iv {
	case Day, FourDays, Week:
		return DayLayout
	case Month, TwoMonths:
		return MonthLayout
	default:
		return YearLayout
	}
}

// Formatter returns a function printing dates with a strftime layout.
func Formatter(layout string) func(time.Time) string {
	return func(t time.Time) string {
		s, err := strftime.Format(layout, t)
		if err != nil {
			return t.Format("06-01-02")
		}
		return s
	}
}

// Range returns the interval boundaries inside [start, stop], both inclusive,
// in the location of start.
func (iv Interval) Range(start, stop time.Time) []time.Time {
	if stop.Before(start) {
		start, stop = stop, start
	}
	stop = stop.In(start.Location())

	var ticks []time.Time
	for t := iv.ceil(start); !t.After(stop); t = iv.step(t) {
		if iv.keep(t) {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// floor truncates t to the start of the base calendar unit.
func (iv Interval) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch iv {
	case Week:
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return day.AddDate(0, 0, -int(day.Weekday()))
	case Month, TwoMonths:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

func (iv Interval) ceil(t time.Time) time.Time {
	f := iv.floor(t)
	if f.Equal(t) {
		return f
	}
	return iv.step(f)
}

// step advances by one base unit. Multi-unit intervals step by the base unit
// and filter with keep, so ticks stay aligned to the calendar.
func (iv Interval) step(t time.Time) time.Time {
	switch iv {
	case Week:
		return t.AddDate(0, 0, 7)
	case Month, TwoMonths:
		return t.AddDate(0, 1, 0)
	case Year:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func (iv Interval) keep(t time.Time) bool {
	switch iv {
	case FourDays:
		return (t.Day()-1)%4 == 0
	case TwoMonths:
		return (int(t.Month())-1)%2 == 0
	default:
		return true
	}
}

var dayStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeOfDay prints a number of seconds after midnight as a 24-hour HH:MM
// clock. Values past a day wrap around; negative values count back from midnight.
func TimeOfDay(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return ""
	}
	ms := math.Round(seconds * 1000)
	return dayStart.Add(time.Duration(ms) * time.Millisecond).Format("15:04")
}
