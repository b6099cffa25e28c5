// Package log is the logging facade used by raftfmt. Callers hand a Logger to
// the components that need one; adapters connect it to a concrete backend.
package log

import (
	"strings"

	"github.com/pkg/errors"
)

// FmtLogger is a trivial interface for a Printf style sink, satisfied by
// *log.Logger from the standard library.
type FmtLogger interface {
	Printf(format string, v ...interface{})
}

// Logger forwards pre-formatted messages to a backend at one of six
// severities. Implementations never return errors to the caller and Fatal
// does not terminate the process.
type Logger interface {
	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)
}

type Level int

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = []string{"trace", "debug", "info", "warn", "error", "fatal"}

func (l Level) String() string {
	if l < TraceLevel || l > FatalLevel {
		return "unknown"
	}
	return levelNames[l]
}

// UnknownLevelError is returned by ParseLevel for a name that is not a level.
type UnknownLevelError struct {
	Name string
}

func (e UnknownLevelError) Error() string {
	return "unknown log level " + e.Name
}

// ParseLevel parses a level name, case insensitively. "warning" is accepted
// for WarnLevel.
func ParseLevel(name string) (Level, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "warning" {
		return WarnLevel, nil
	}
	for i, ln := range levelNames {
		if ln == n {
			return Level(i), nil
		}
	}
	return 0, errors.WithStack(UnknownLevelError{Name: name})
}

// Log sends msg to l at lvl. Unknown levels are logged at error.
func Log(l Logger, lvl Level, msg string) {
	switch lvl {
	case TraceLevel:
		l.Trace(msg)
	case DebugLevel:
		l.Debug(msg)
	case InfoLevel:
		l.Info(msg)
	case WarnLevel:
		l.Warn(msg)
	case ErrorLevel:
		l.Error(msg)
	case FatalLevel:
		l.Fatal(msg)
	default:
		l.Error(msg)
	}
}

// Discard is a Logger that drops every message.
var Discard Logger = discard{}

type discard struct{}

func (discard) Trace(string) {}
func (discard) Debug(string) {}
func (discard) Info(string)  {}
func (discard) Warn(string)  {}
func (discard) Error(string) {}
func (discard) Fatal(string) {}
