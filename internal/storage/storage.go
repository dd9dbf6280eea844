package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Tiliavir/joblog/internal/model"
	"github.com/Tiliavir/joblog/internal/timecalc"
)

var (
	// ErrEmpty is returned when the last entry of an empty list is requested.
	ErrEmpty = errors.New("log list is empty")

	// ErrClockSkew is returned when the clock reads earlier than the last entry.
	ErrClockSkew = errors.New("clock is behind the last entry")
)

// maxLineSize bounds a single line of the logs file.
const maxLineSize = 1 << 20

// File is the open logs file. *os.File satisfies it.
type File interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
	Sync() error
	Close() error
}

type pendingMode int

const (
	pendingNone pendingMode = iota
	pendingAppend
	pendingRewrite
)

// pending tracks what Save still has to write: nothing, the last count
// entries, or the whole file. With tail set the file holds lines past the
// loaded entries, which appending would bury, so any change rewrites it.
type pending struct {
	mode  pendingMode
	count int
	tail  bool
}

func (p *pending) add() {
	switch {
	case p.tail:
		p.rewrite()
	case p.mode == pendingNone:
		p.mode, p.count = pendingAppend, 1
	case p.mode == pendingAppend:
		p.count++
	}
}

func (p *pending) rewrite() {
	p.mode, p.count = pendingRewrite, 0
}

// LogList is the ordered list of entries of one logs file. It owns the file
// until Close.
type LogList struct {
	file    File
	entries []model.Entry
	active  bool
	pending pending
	now     func() time.Time
	closed  bool
}

// Option configures a LogList.
type Option func(*LogList)

// WithClock replaces the clock used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(l *LogList) {
		l.now = now
	}
}

// Open reads f from its current position until EOF or the first blank line.
// Anything after a blank line is dropped on the next Save. f is closed if
// reading fails.
func Open(f File, opts ...Option) (_ *LogList, err error) {
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	l := &LogList{file: f, now: timecalc.Now}
	for _, opt := range opts {
		opt(l)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			l.pending.tail = true
			break
		}
		entry, err := model.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if entry.IsStructural() {
			l.active = entry.Kind() == model.Start
		}
		l.entries = append(l.entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("storage error reading logs: %w", err)
	}
	return l, nil
}

// IsActive reports whether a session is running.
func (l *LogList) IsActive() bool {
	return l.active
}

// Len returns the number of entries.
func (l *LogList) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all entries in order.
func (l *LogList) Entries() []model.Entry {
	return append([]model.Entry(nil), l.entries...)
}

// Check verifies that starts and ends alternate and that the entries are
// sorted by time.
func (l *LogList) Check() error {
	active := false
	for i, e := range l.entries {
		if !e.IsStructural() {
			continue
		}
		starts := e.Kind() == model.Start
		if starts == active {
			if starts {
				return fmt.Errorf("%w: two starts without end (entry %d)", model.ErrCorruptedFile, i+1)
			}
			return fmt.Errorf("%w: two ends without start (entry %d)", model.ErrCorruptedFile, i+1)
		}
		active = starts
	}
	for i := 1; i < len(l.entries); i++ {
		if l.entries[i-1].Time().After(l.entries[i].Time()) {
			return fmt.Errorf("%w: entries not sorted (entry %d)", model.ErrCorruptedFile, i+1)
		}
	}
	return nil
}

// stamp returns the time for an entry placed at index i. It must not be
// earlier than the entry before it.
func (l *LogList) stamp(i int) (time.Time, error) {
	t := l.now()
	if i > 0 && t.Before(l.entries[i-1].Time()) {
		return time.Time{}, fmt.Errorf("%w: %w (%s)",
			model.ErrSituational, ErrClockSkew, timecalc.Format(l.entries[i-1].Time()))
	}
	return t, nil
}

// Start opens a session. With amend set and a session already running, the
// running start is moved to now, as long as nothing was noted since.
func (l *LogList) Start(amend bool) error {
	if !l.active {
		t, err := l.stamp(len(l.entries))
		if err != nil {
			return err
		}
		l.entries = append(l.entries, model.NewStart(t))
		l.active = true
		l.pending.add()
		return nil
	}
	if !amend {
		return fmt.Errorf("%w: already started", model.ErrSituational)
	}
	return l.amendLast(model.Start, "cannot move start if something was noted in between")
}

// Log adds a note to the running session.
func (l *LogList) Log(message string) error {
	if !l.active {
		return fmt.Errorf("%w: log is only enabled during work", model.ErrSituational)
	}
	if strings.ContainsAny(message, "\r\n") {
		return fmt.Errorf("%w: a log message cannot span several lines", model.ErrSituational)
	}
	t, err := l.stamp(len(l.entries))
	if err != nil {
		return err
	}
	l.entries = append(l.entries, model.NewNote(t, message))
	l.pending.add()
	return nil
}

// End closes the running session. With amend set and no session running,
// the last end is moved to now.
func (l *LogList) End(amend bool) error {
	if l.active {
		t, err := l.stamp(len(l.entries))
		if err != nil {
			return err
		}
		l.entries = append(l.entries, model.NewEnd(t))
		l.active = false
		l.pending.add()
		return nil
	}
	if !amend || len(l.entries) == 0 {
		return fmt.Errorf("%w: not started", model.ErrSituational)
	}
	return l.amendLast(model.End, "cannot move end if something was noted in between")
}

// amendLast replaces the last entry, which must be of kind k, with a fresh one.
func (l *LogList) amendLast(k model.Kind, mismatch string) error {
	last := len(l.entries) - 1
	if l.entries[last].Kind() != k {
		return fmt.Errorf("%w: %s", model.ErrSituational, mismatch)
	}
	t, err := l.stamp(last)
	if err != nil {
		return err
	}
	if k == model.Start {
		l.entries[last] = model.NewStart(t)
	} else {
		l.entries[last] = model.NewEnd(t)
	}
	l.pending.rewrite()
	return nil
}

// List returns the entries strictly between from and to. Notes are only
// included with includeNotes.
func (l *LogList) List(from, to time.Time, includeNotes bool) []model.Entry {
	var res []model.Entry
	for _, e := range l.entries {
		if !e.Time().After(from) || !e.Time().Before(to) {
			continue
		}
		if e.Kind() == model.Note && !includeNotes {
			continue
		}
		res = append(res, e)
	}
	return res
}

// LastEntry returns the most recent entry.
func (l *LogList) LastEntry() (model.Entry, error) {
	if len(l.entries) == 0 {
		return model.Entry{}, ErrEmpty
	}
	return l.entries[len(l.entries)-1], nil
}

// LastStart returns the most recent start.
func (l *LogList) LastStart() (model.Entry, error) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind() == model.Start {
			return l.entries[i], nil
		}
	}
	return model.Entry{}, fmt.Errorf("%w: no start found", model.ErrSituational)
}

// Save writes pending changes: new entries are appended, an amended list is
// rewritten as a whole. After a failed append the next Save rewrites, since
// part of the entries may have landed.
func (l *LogList) Save() error {
	var err error
	switch l.pending.mode {
	case pendingNone:
		return nil
	case pendingAppend:
		err = l.appendEntries(l.entries[len(l.entries)-l.pending.count:])
	case pendingRewrite:
		err = l.rewrite()
	}
	if err == nil {
		if err = l.file.Sync(); err != nil {
			err = fmt.Errorf("storage error syncing logs: %w", err)
		}
	}
	if err != nil {
		if l.pending.mode == pendingAppend {
			l.pending.rewrite()
		}
		return err
	}
	l.pending = pending{}
	return nil
}

func (l *LogList) appendEntries(entries []model.Entry) error {
	end, err := l.file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("storage error seeking logs: %w", err)
	}

	w := bufio.NewWriter(l.file)
	if end > 0 {
		// A hand edited file may lack the final newline.
		if _, err := l.file.Seek(-1, io.SeekEnd); err != nil {
			return fmt.Errorf("storage error seeking logs: %w", err)
		}
		last := make([]byte, 1)
		if _, err := io.ReadFull(l.file, last); err != nil {
			return fmt.Errorf("storage error reading logs: %w", err)
		}
		if last[0] != '\n' {
			w.WriteByte('\n')
		}
	}
	return writeEntries(w, entries)
}

func (l *LogList) rewrite() error {
	if err := l.file.Truncate(0); err != nil {
		return fmt.Errorf("storage error truncating logs: %w", err)
	}
	if _, err := l.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("storage error seeking logs: %w", err)
	}
	return writeEntries(bufio.NewWriter(l.file), l.entries)
}

func writeEntries(w *bufio.Writer, entries []model.Entry) error {
	for _, e := range entries {
		w.WriteString(e.String())
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("storage error writing logs: %w", err)
	}
	return nil
}

// Close flushes and closes the logs file. Unsaved changes are dropped.
func (l *LogList) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return errors.Join(l.file.Sync(), l.file.Close())
}
