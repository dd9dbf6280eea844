package ui_test

import (
	"bytes"
	"testing"

	"github.com/Tiliavir/joblog/internal/ui"
)

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !ui.ColorEnabled("always", &buf) {
		t.Error("always: expected color")
	}
	if ui.ColorEnabled("never", &buf) {
		t.Error("never: expected no color")
	}
	if ui.ColorEnabled("auto", &buf) {
		t.Error("auto on a buffer: expected no color")
	}
}

func TestPlainOutput(t *testing.T) {
	p := ui.NewPrinter(&bytes.Buffer{}, "never", 0)
	if got := p.Bold("Overall"); got != "Overall" {
		t.Errorf("Bold = %q, want plain text", got)
	}
	if got := p.Good("End noted."); got != "End noted." {
		t.Errorf("Good = %q, want plain text", got)
	}
	if got := p.Note("a note"); got != " - a note" {
		t.Errorf("Note = %q", got)
	}
}

func TestNoteWraps(t *testing.T) {
	p := ui.NewPrinter(&bytes.Buffer{}, "never", 20)
	got := p.Note("refactored the parser for better errors")
	want := " - refactored the\n   parser for better\n   errors"
	if got != want {
		t.Errorf("Note = %q, want %q", got, want)
	}
}
