package timecalc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tiliavir/joblog/internal/timecalc"
)

func TestResolveRange(t *testing.T) {
	// Friday afternoon.
	now := time.Date(2026, 2, 27, 15, 4, 5, 0, time.Local)
	until := now.Add(time.Second)

	tests := []struct {
		name     string
		args     []string
		from, to time.Time
	}{
		{"empty", nil, time.Date(2026, 2, 27, 0, 0, 0, 0, time.Local), until},
		{"day", []string{"d"}, time.Date(2026, 2, 27, 0, 0, 0, 0, time.Local), until},
		{"week", []string{"w"}, time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local), until},
		{"month", []string{"m"}, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), until},
		{"year", []string{"y"}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), until},
		{"duration", []string{"2h"}, now.Add(-2 * time.Hour), until},
		{"since date", []string{"20.02.2026"}, time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local), until},
		{"between dates", []string{"20.02.2026", "-", "22.02.2026"},
			time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local), time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local)},
		{"between timestamps", []string{"20.02.2026 08:00:00", "22.02.2026 12:00:00"},
			time.Date(2026, 2, 20, 8, 0, 0, 0, time.Local), time.Date(2026, 2, 22, 12, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		from, to, err := timecalc.ResolveRange(tt.args, now)
		if err != nil {
			t.Errorf("%s: ResolveRange(%q): %v", tt.name, tt.args, err)
			continue
		}
		if !from.Equal(tt.from) || !to.Equal(tt.to) {
			t.Errorf("%s: ResolveRange(%q) = %v .. %v, want %v .. %v", tt.name, tt.args, from, to, tt.from, tt.to)
		}
	}
}

func TestResolveRangeInvalid(t *testing.T) {
	now := time.Date(2026, 2, 27, 15, 4, 5, 0, time.Local)
	for _, args := range [][]string{
		{"x"},
		{"2w"},
		{"20.02.2026", "tomorrow"},
		{"a", "b", "c"},
		{"20.02.2026", "+", "22.02.2026"},
		{"200000000d"},
	} {
		if _, _, err := timecalc.ResolveRange(args, now); !errors.Is(err, timecalc.ErrFormat) {
			t.Errorf("ResolveRange(%q) error = %v, want ErrFormat", args, err)
		}
	}
}
