package accepttest

import (
	"io"

	"github.com/dshills/accepttest/internal/config"
	"github.com/dshills/accepttest/internal/literal"
	"github.com/dshills/accepttest/internal/report"
	"github.com/dshills/accepttest/internal/session"
	"github.com/dshills/accepttest/internal/text"
	"github.com/dshills/accepttest/internal/tracking"
)

// Re-export the types a library consumer needs.
type (
	// Config holds harness settings.
	Config = config.Config

	// ReportPaths addresses the fields of a runner report line.
	ReportPaths = config.ReportPaths

	// Tracker shifts original-file line numbers across applied edits.
	Tracker = tracking.Tracker

	// TrackedEdit is one recorded (line, delta) pair.
	TrackedEdit = tracking.Edit

	// Session applies a batch of rewrites with backups and journaling.
	Session = session.Session

	// Result describes one applied rewrite.
	Result = session.Result

	// Mismatch is the outcome of a dry-run comparison.
	Mismatch = session.Mismatch

	// Edit is one rewrite request parsed from a runner report.
	Edit = report.Edit
)

// Sentinel errors from the core operations.
var (
	ErrInvalidLineNumber    = text.ErrInvalidLineNumber
	ErrNoLiteralFound       = literal.ErrNoLiteralFound
	ErrUnsupportedCharacter = literal.ErrUnsupportedCharacter
	ErrNoChange             = session.ErrNoChange
)

// LineStart returns the byte offset of the first character of the
// 1-indexed line lineno.
func LineStart(src string, lineno int) (int, error) {
	return text.LineStart(src, lineno)
}

// LineEnd returns the byte offset of the line feed ending line lineno, or
// the buffer length when the line is unterminated.
func LineEnd(src string, lineno int) (int, error) {
	return text.LineEnd(src, lineno)
}

// Normalize converts CRLF and lone CR line endings to LF.
func Normalize(s string) string {
	return text.Normalize(s)
}

// ReplaceLiteral rewrites the body of the nearest triple-quoted literal
// whose closing delimiter ends at or before line lineno, returning the
// new buffer and the signed line-count change.
func ReplaceLiteral(src string, lineno int, newBody string) (string, int, error) {
	return literal.Replace(src, lineno, newBody)
}

// ExtractLiteral decodes the body of the nearest triple-quoted literal
// whose closing delimiter ends at or before line lineno.
func ExtractLiteral(src string, lineno int) (string, error) {
	return literal.Extract(src, lineno)
}

// NewTracker returns an empty edit-location tracker.
func NewTracker() *Tracker {
	return tracking.NewTracker()
}

// NewSession creates an accept session from cfg.
func NewSession(cfg Config) *Session {
	return session.New(cfg)
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig builds a Config from defaults, an optional TOML file, and
// environment overrides.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// ParseReport reads rewrite requests from a runner's JSON-lines output.
func ParseReport(r io.Reader, paths ReportPaths) ([]Edit, error) {
	return report.Parse(r, paths)
}

// Revert restores every backup under root written with the given suffix.
func Revert(root, backupSuffix string) ([]string, error) {
	return session.Revert(root, backupSuffix)
}
