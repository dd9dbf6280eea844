package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/Tiliavir/joblog/internal/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintCSV(t *testing.T) {
	ts := time.Date(2026, 2, 27, 9, 0, 0, 0, time.Local)
	var buf bytes.Buffer
	printCSV(&buf, []model.Entry{
		model.NewStart(ts),
		model.NewNote(ts.Add(time.Minute), `said "hi", left`),
		model.NewEnd(ts.Add(time.Hour)),
	})
	want := "date,time,type,message\n" +
		"2026-02-27,09:00:00,start,\n" +
		"2026-02-27,09:01:00,log,\"said \"\"hi\"\", left\"\n" +
		"2026-02-27,10:00:00,end,\n"
	if buf.String() != want {
		t.Errorf("printCSV =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestReportLabel(t *testing.T) {
	now := time.Date(2026, 2, 27, 15, 0, 0, 0, time.Local)
	got := reportLabel([]string{"w"}, now, now, now)
	if want := "Week 2026-W09 (Mon 23.02.2026 - Sun 01.03.2026)"; got != want {
		t.Errorf("reportLabel(w) = %q, want %q", got, want)
	}

	from := time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 2, 23, 0, 0, 0, 0, time.Local)
	got = reportLabel([]string{"20.02.2026", "22.02.2026"}, from, to, now)
	if want := "Fri 20.02.2026 - Sun 22.02.2026"; got != want {
		t.Errorf("reportLabel(dates) = %q, want %q", got, want)
	}
}
