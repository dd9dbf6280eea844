package timecalc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/joblog/internal/timecalc"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0"},
		{45 * time.Second, "0"},
		{45 * time.Minute, "45min"},
		{90 * time.Minute, "1h30min"},
		{2 * time.Hour, "2h"},
		{26*time.Hour + time.Minute, "26h1min"},
		{-90 * time.Minute, "-1h30min"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(tt.d)
		if got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"15m", 15 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"0m", 0},
		{"106751d", 106751 * 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseDuration(tt.in)
		if err != nil {
			t.Errorf("ParseDuration(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "x", "m", "2", "2w", "h2", "1.5h", "-2h", "2 h", "106752d", "200000000d", "9999999999h", "99999999999999999999m"} {
		if _, err := timecalc.ParseDuration(in); !errors.Is(err, timecalc.ErrFormat) {
			t.Errorf("ParseDuration(%q) error = %v, want ErrFormat", in, err)
		}
	}
}

func TestParseAndFormat(t *testing.T) {
	ts := time.Date(2026, 2, 27, 8, 5, 9, 0, time.Local)
	s := timecalc.Format(ts)
	if s != "27.02.2026 08:05:09" {
		t.Fatalf("Format = %q", s)
	}
	got, err := timecalc.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	if !got.Equal(ts) {
		t.Errorf("Parse(%q) = %v, want %v", s, got, ts)
	}

	for _, in := range []string{
		"",
		"27.02.2026",
		"27.02.2026 8:05:09",
		"27.02.2026 08:05:09 ",
		"2026-02-27 08:05:09",
		"32.02.2026 08:05:09",
		"27.02.2026 25:05:09",
	} {
		if _, err := timecalc.Parse(in); !errors.Is(err, timecalc.ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", in, err)
		}
	}
}

func TestFormatDateAndClock(t *testing.T) {
	ts := time.Date(2026, 2, 27, 17, 21, 2, 0, time.Local)
	if got := timecalc.FormatDateOnly(ts); got != "Fri 27.02.2026" {
		t.Errorf("FormatDateOnly = %q", got)
	}
	if got := timecalc.FormatClockOnly(ts); got != "17:21:02" {
		t.Errorf("FormatClockOnly = %q", got)
	}
}

func TestCalendarHelpers(t *testing.T) {
	// 2026-02-27 is a Friday.
	fri := time.Date(2026, 2, 27, 10, 30, 15, 0, time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"StartOfDay", timecalc.StartOfDay(fri), time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)},
		{"EndOfDay", timecalc.EndOfDay(fri), time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)},
		{"LastMonday", timecalc.LastMonday(fri), time.Date(2026, 2, 23, 10, 30, 15, 0, time.UTC)},
		{"LastMonday of Monday", timecalc.LastMonday(time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)), time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)},
		{"LastMonday of Sunday", timecalc.LastMonday(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)), time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)},
		{"FirstOfMonth", timecalc.FirstOfMonth(fri), time.Date(2026, 2, 1, 10, 30, 15, 0, time.UTC)},
		{"FirstOfYear", timecalc.FirstOfYear(fri), time.Date(2026, 1, 1, 10, 30, 15, 0, time.UTC)},
	}
	for _, tt := range tests {
		if !tt.got.Equal(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-02-27 is a Friday (week 9).
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	monday, sunday := timecalc.WeekRange(fri)

	wantMonday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	wantSunday := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)

	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday = %v, want %v", monday, wantMonday)
	}
	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}
}

func TestISOWeekLabel(t *testing.T) {
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	got := timecalc.ISOWeekLabel(fri)
	if got != "2026-W09" {
		t.Errorf("ISOWeekLabel = %q, want %q", got, "2026-W09")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}
