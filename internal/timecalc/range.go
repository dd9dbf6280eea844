package timecalc

import (
	"fmt"
	"time"
)

// ResolveRange turns the arguments of a list query into a time range.
//
//	(none)                    today
//	d | w | m | y             today, this week, this month, this year
//	<n>m | <n>h | <n>d        the last n minutes, hours or days
//	<date>                    since date
//	<date> [-] <date>         between the two dates
//
// A date is either dd.mm.YYYY or a full timestamp. Ranges that end "now"
// end one second after now so entries written in the current second are
// inside the exclusive upper bound.
func ResolveRange(args []string, now time.Time) (time.Time, time.Time, error) {
	until := now.Add(time.Second)

	if len(args) == 3 && args[1] == "-" {
		args = []string{args[0], args[2]}
	}

	switch len(args) {
	case 0:
		return StartOfDay(now), until, nil
	case 1:
		switch args[0] {
		case "d":
			return StartOfDay(now), until, nil
		case "w":
			return StartOfDay(LastMonday(now)), until, nil
		case "m":
			return StartOfDay(FirstOfMonth(now)), until, nil
		case "y":
			return StartOfDay(FirstOfYear(now)), until, nil
		}
		if d, err := ParseDuration(args[0]); err == nil {
			return now.Add(-d), until, nil
		}
		from, _, err := parseBound(args[0])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return from, until, nil
	case 2:
		from, _, err := parseBound(args[0])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, dayOnly, err := parseBound(args[1])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if dayOnly {
			to = StartOfDay(to.AddDate(0, 0, 1))
		}
		return from, to, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %d arguments", ErrFormat, len(args))
}

// parseBound accepts a day or a full timestamp and reports which one it was.
func parseBound(s string) (time.Time, bool, error) {
	if t, err := ParseDay(s); err == nil {
		return t, true, nil
	}
	t, err := Parse(s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, false, nil
}
