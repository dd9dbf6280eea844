package timecalc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layout is the fixed timestamp format of the logs file: dd.mm.YYYY HH:MM:SS.
const Layout = "02.01.2006 15:04:05"

// LayoutSize is the length of a formatted timestamp.
const LayoutSize = len(Layout)

const (
	dayLayout   = "02.01.2006"
	clockLayout = "15:04:05"
)

// ErrFormat is returned when a date or duration specifier cannot be interpreted.
var ErrFormat = errors.New("unrecognized date or duration format")

// Now returns the current local time with second resolution.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// Parse reads a timestamp in Layout. Daylight saving time is resolved by the
// local zone rules, so an ambiguous wall clock never shifts by an hour.
func Parse(s string) (time.Time, error) {
	if len(s) != LayoutSize {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return t, nil
}

// ParseDay reads a date in the form dd.mm.YYYY and returns 00:00:00 of that day.
func ParseDay(s string) (time.Time, error) {
	if len(s) != len(dayLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return t, nil
}

// Format returns the 19 character canonical form of t.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// FormatDateOnly returns e.g. "Mon 01.01.1970".
func FormatDateOnly(t time.Time) string {
	return t.Format("Mon " + dayLayout)
}

// FormatClockOnly returns e.g. "17:21:02".
func FormatClockOnly(t time.Time) string {
	return t.Format(clockLayout)
}

// FormatDuration formats d as "1h30min", "2h" or "45min". Seconds are
// dropped and a duration below one minute is "0".
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int64(d / time.Hour)
	m := int64((d % time.Hour) / time.Minute)

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dmin", m)
	}
	if b.Len() == 0 {
		return "0"
	}
	return sign + b.String()
}

// ParseDuration reads "<integer><unit>" where unit is m (minutes), h (hours)
// or d (24 hour days).
func ParseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	digits, unit := s[:len(s)-1], s[len(s)-1]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrFormat, s)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	var per time.Duration
	switch unit {
	case 'm':
		per = time.Minute
	case 'h':
		per = time.Hour
	case 'd':
		per = 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: unknown unit in %q", ErrFormat, s)
	}
	if n > math.MaxInt64/int64(per) {
		return 0, fmt.Errorf("%w: %q is too long", ErrFormat, s)
	}
	return time.Duration(n) * per, nil
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// LastMonday returns t moved back to the Monday of its week, keeping the
// clock time. A Monday maps to itself.
func LastMonday(t time.Time) time.Time {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// FirstOfMonth returns t moved back to the 1st of its month, keeping the clock time.
func FirstOfMonth(t time.Time) time.Time {
	return t.AddDate(0, 0, -(t.Day() - 1))
}

// FirstOfYear returns t moved back to the 1st of January, keeping the clock time.
func FirstOfYear(t time.Time) time.Time {
	return t.AddDate(0, 0, -(t.YearDay() - 1))
}

// WeekRange returns Monday 00:00:00 and Sunday 23:59:59 of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	monday := StartOfDay(LastMonday(t))
	sunday := EndOfDay(monday.AddDate(0, 0, 6))
	return monday, sunday
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
