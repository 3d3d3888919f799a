package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log with helpers for vault operations.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at the default (info) level.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		Level: level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that drops all output. Used in tests.
func Discard() *Logger {
	return New(io.Discard)
}

// Moved logs a note landing in its month folder.
func (l *Logger) Moved(file, folder string) {
	l.Info("moved note", "file", file, "folder", folder)
}

// SkippedUndated logs a file excluded because its name carries no usable date.
func (l *Logger) SkippedUndated(file string) {
	l.Debug("skipped note", "file", file, "reason", "no date in filename")
}

// HeadingFixed logs a synthesized leading heading.
func (l *Logger) HeadingFixed(file, title string) {
	l.Info("fixed heading", "file", file, "title", title)
}

// Linked logs a next-note link being appended.
func (l *Logger) Linked(from, to string) {
	l.Info("linked note", "from", from, "to", to)
}

// AlreadyLinked logs a file skipped because the link is already present.
func (l *Logger) AlreadyLinked(file, target string) {
	l.Debug("skipped link", "file", file, "target", target, "reason", "link exists")
}

// EndOfChain logs the chronologically last note, which has no successor.
func (l *Logger) EndOfChain(file string) {
	l.Info("no next note", "file", file, "reason", "last chronological note")
}

// DuplicateDate warns that two files share a date and one displaced the
// other from the vault-wide chain.
func (l *Logger) DuplicateDate(date, kept, dropped string) {
	l.Warn("duplicate date", "date", date, "kept", kept, "dropped", dropped)
}

// FileError logs a per-file failure that does not abort the batch.
func (l *Logger) FileError(file string, err error) {
	l.Error("file error", "file", file, "error", err)
}
