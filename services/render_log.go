package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// RenderLog receives the non-fatal diagnostics emitted during a render:
// missing optional fields, unreadable logos, placeholder substitution
// failures, empty table substitutions. Renders never abort through this
// interface; fatal conditions are returned as errors instead.
type RenderLog interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// LogCollector is the default RenderLog: it appends timestamped entries to
// an in-memory list (served by the log viewer) and mirrors them to the
// process log. Safe for use from concurrent handler goroutines.
type LogCollector struct {
	mu      sync.Mutex
	entries []string
}

func NewLogCollector() *LogCollector {
	return &LogCollector{}
}

func (l *LogCollector) append(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	entry := fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg)
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
	log.Printf("[%s] %s", level, msg)
}

func (l *LogCollector) Infof(format string, args ...interface{}) {
	l.append("INFO", format, args...)
}

func (l *LogCollector) Warnf(format string, args ...interface{}) {
	l.append("WARNING", format, args...)
}

// Entries returns a copy of the collected log lines, oldest first.
func (l *LogCollector) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Warnings returns only the collected warning lines.
func (l *LogCollector) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if strings.Contains(e, "] WARNING:") {
			out = append(out, e)
		}
	}
	return out
}
