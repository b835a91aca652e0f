// Package session applies a batch of expectation rewrites to source files.
//
// A session owns the bookkeeping an accept run needs: line-number
// adjustment across edits to the same file, a one-time backup per touched
// file, and an optional JSON-lines journal of every applied edit. File
// contents are re-read per edit so a session tolerates interleaved edits
// from other tools as long as line counts are accounted for.
package session

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/accepttest/internal/config"
	"github.com/dshills/accepttest/internal/literal"
	"github.com/dshills/accepttest/internal/text"
	"github.com/dshills/accepttest/internal/tracking"
)

// Result describes one applied rewrite.
type Result struct {
	Path         string
	Line         int // line number as recorded against the original file
	AdjustedLine int // line number actually edited
	Delta        int // line-count change
}

// Mismatch is the outcome of a dry-run comparison.
type Mismatch struct {
	Path     string
	Line     int
	Expected string
	Actual   string
	Equal    bool
}

// Session tracks state across one accept run.
type Session struct {
	id      string
	cfg     config.Config
	tracker *tracking.Tracker
}

// New creates a session with a fresh tracker and a unique identifier.
func New(cfg config.Config) *Session {
	return &Session{
		id:      uuid.New().String(),
		cfg:     cfg,
		tracker: tracking.NewTracker(),
	}
}

// ID returns the session identifier used in journal entries.
func (s *Session) ID() string { return s.id }

// Accept rewrites the expectation literal addressed by (path, lineno) to
// hold actual. lineno is interpreted against the file as it was before
// this session's edits; the session shifts it by prior deltas. The first
// edit to a file writes a backup copy next to it.
func (s *Session) Accept(path string, lineno int, actual string) (Result, error) {
	old, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	adjusted := s.tracker.Adjust(path, lineno)
	updated, delta, err := literal.Replace(string(old), adjusted, actual)
	if err != nil {
		return Result{}, fmt.Errorf("%s:%d: %w", path, adjusted, err)
	}
	if updated == string(old) {
		return Result{}, fmt.Errorf("%s:%d: %w", path, adjusted, ErrNoChange)
	}

	if !s.tracker.Touched(path) {
		if err := os.WriteFile(path+s.cfg.BackupSuffix, old, 0o644); err != nil {
			return Result{}, fmt.Errorf("writing backup for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}
	// Histories hold original-file line numbers: Adjust compares against
	// the raw requested line, so recording the adjusted one would hide
	// this edit from later requests between the two coordinates.
	s.tracker.Record(path, lineno, delta)

	res := Result{Path: path, Line: lineno, AdjustedLine: adjusted, Delta: delta}
	if err := s.journal(res); err != nil {
		return res, err
	}
	return res, nil
}

// Check compares the current expectation literal at (path, lineno) with
// actual without modifying anything.
func (s *Session) Check(path string, lineno int, actual string) (Mismatch, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Mismatch{}, fmt.Errorf("reading %s: %w", path, err)
	}

	adjusted := s.tracker.Adjust(path, lineno)
	expected, err := literal.Extract(string(src), adjusted)
	if err != nil {
		return Mismatch{}, fmt.Errorf("%s:%d: %w", path, adjusted, err)
	}

	normalized := text.Normalize(actual)
	return Mismatch{
		Path:     path,
		Line:     lineno,
		Expected: expected,
		Actual:   normalized,
		Equal:    expected == normalized,
	}, nil
}

// journal appends one JSON line per applied edit when journaling is
// configured.
func (s *Session) journal(res Result) error {
	if s.cfg.Journal == "" {
		return nil
	}

	line := "{}"
	for _, kv := range []struct {
		key string
		val any
	}{
		{"session", s.id},
		{"path", res.Path},
		{"line", res.Line},
		{"adjusted_line", res.AdjustedLine},
		{"delta", res.Delta},
		{"ts", time.Now().UTC().Format(time.RFC3339)},
	} {
		var err error
		if line, err = sjson.Set(line, kv.key, kv.val); err != nil {
			return fmt.Errorf("encoding journal entry: %w", err)
		}
	}

	f, err := os.OpenFile(s.cfg.Journal, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}
