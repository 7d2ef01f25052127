package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StreamLoggerOptions encapsulates the available options which can be used when creating a 'StreamLogger'.
type StreamLoggerOptions struct {
	// Writer is where log lines are written. Defaults to stdout.
	Writer io.Writer

	// Level is the minimum level which will be written, anything less verbose is dropped. Defaults to 'LevelTrace'.
	Level Level
}

func (o *StreamLoggerOptions) defaults() {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
}

// StreamLogger is a 'Logger' which writes each message on its own line, prefixed with a timestamp and level.
type StreamLogger struct {
	writer io.Writer
	level  Level
	now    func() time.Time
}

// NewStreamLogger returns a new logger using the given options.
func NewStreamLogger(options StreamLoggerOptions) *StreamLogger {
	options.defaults()

	return &StreamLogger{
		writer: options.Writer,
		level:  options.Level,
		now:    time.Now,
	}
}

// Log writes the formatted message if the level is at least as severe as the configured minimum.
func (s *StreamLogger) Log(level Level, format string, args ...any) {
	if level < s.level {
		return
	}

	// Logging must never fail the caller, a broken writer just loses the line
	_, _ = fmt.Fprintf(s.writer, "%s %s: %s\n", s.now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
