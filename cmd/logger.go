package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rpgo/wealth-planner/internal/calculation"
)

// streamLogger writes leveled lines to w. Debug and info lines need verbose.
type streamLogger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
	now     func() time.Time
}

var _ calculation.Logger = (*streamLogger)(nil)

func newLogger(w io.Writer, verbose bool) *streamLogger {
	return &streamLogger{w: w, verbose: verbose, now: time.Now}
}

func (l *streamLogger) Debugf(format string, args ...any) {
	if l.verbose {
		l.write("DEBUG", format, args...)
	}
}

func (l *streamLogger) Infof(format string, args ...any) {
	if l.verbose {
		l.write("INFO", format, args...)
	}
}

func (l *streamLogger) Warnf(format string, args ...any)  { l.write("WARN", format, args...) }
func (l *streamLogger) Errorf(format string, args ...any) { l.write("ERROR", format, args...) }

func (l *streamLogger) write(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %-5s %s\n", l.now().Format("15:04:05"), level, fmt.Sprintf(format, args...))
}
