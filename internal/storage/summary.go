package storage

import (
	"time"

	"github.com/Tiliavir/joblog/internal/model"
)

// Session is one worked period as seen inside a queried range.
type Session struct {
	Start time.Time
	End   time.Time
	// Open is set when the session had not ended by the end of the range.
	Open  bool
	Notes []string
}

// Duration returns the worked time of the session.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Summary groups listed entries into sessions.
type Summary struct {
	Sessions []Session
	Total    time.Duration
}

// Summarize pairs the starts and ends of entries, as returned by List for
// the range from..until. A session cut by the range is clipped to it.
func Summarize(entries []model.Entry, from, until time.Time) Summary {
	var (
		sum     Summary
		current *Session
	)
	open := func(t time.Time) {
		current = &Session{Start: t}
	}
	closeAt := func(t time.Time) {
		current.End = t
		sum.Sessions = append(sum.Sessions, *current)
		sum.Total += current.Duration()
		current = nil
	}

	for _, e := range entries {
		switch e.Kind() {
		case model.Start:
			if current != nil {
				closeAt(e.Time())
			}
			open(e.Time())
		case model.Note:
			if current == nil {
				open(from)
			}
			current.Notes = append(current.Notes, e.Message())
		case model.End:
			if current == nil {
				open(from)
			}
			closeAt(e.Time())
		}
	}
	if current != nil {
		current.Open = true
		end := until
		if end.Before(current.Start) {
			end = current.Start
		}
		closeAt(end)
	}
	return sum
}
