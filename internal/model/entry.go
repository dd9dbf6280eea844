package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/joblog/internal/timecalc"
)

// Kind tells which event an Entry records.
type Kind int

const (
	Start Kind = iota
	End
	Note
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case Note:
		return "log"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const notePrefix = "log "

// Entry is one line of the logs file. Only notes carry a message.
type Entry struct {
	kind    Kind
	time    time.Time
	message string
}

// NewStart records the beginning of a session at t.
func NewStart(t time.Time) Entry {
	return Entry{kind: Start, time: t}
}

// NewEnd records the end of a session at t.
func NewEnd(t time.Time) Entry {
	return Entry{kind: End, time: t}
}

// NewNote records a note written at t.
func NewNote(t time.Time, message string) Entry {
	return Entry{kind: Note, time: t, message: message}
}

func (e Entry) Kind() Kind         { return e.kind }
func (e Entry) Time() time.Time    { return e.time }
func (e Entry) Message() string    { return e.message }
func (e Entry) IsStructural() bool { return e.kind == Start || e.kind == End }

// String serializes the entry to a single line without line separator.
func (e Entry) String() string {
	prefix := timecalc.Format(e.time) + " "
	switch e.kind {
	case Start:
		return prefix + "start"
	case End:
		return prefix + "end"
	case Note:
		return prefix + notePrefix + e.message
	}
	panic(fmt.Sprintf("model: unknown entry kind %d", int(e.kind)))
}

// ParseLine reads one line of the logs file:
//
//	dd.mm.YYYY HH:MM:SS start
//	dd.mm.YYYY HH:MM:SS log <message>
//	dd.mm.YYYY HH:MM:SS end
func ParseLine(line string) (Entry, error) {
	head := line
	if len(head) > timecalc.LayoutSize {
		head = head[:timecalc.LayoutSize]
	}
	t, err := timecalc.Parse(head)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: could not parse date %q", ErrCorruptedFile, head)
	}
	if len(line) < timecalc.LayoutSize+1 {
		return Entry{}, fmt.Errorf("%w: empty line after date %q", ErrCorruptedFile, head)
	}
	if line[timecalc.LayoutSize] != ' ' {
		return Entry{}, fmt.Errorf("%w: missing separator after date in %q", ErrCorruptedFile, line)
	}

	content := line[timecalc.LayoutSize+1:]
	switch {
	case content == "start":
		return NewStart(t), nil
	case content == "end":
		return NewEnd(t), nil
	case strings.HasPrefix(content, notePrefix):
		return NewNote(t, content[len(notePrefix):]), nil
	}
	return Entry{}, fmt.Errorf("%w: unknown log entry %q", ErrCorruptedFile, content)
}
