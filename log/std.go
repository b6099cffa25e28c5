package log

import (
	stdlog "log"
	"os"
)

// Std adapts a Printf style sink, writing "[LEVEL] msg" lines.
type Std struct {
	L FmtLogger
}

// NewStd returns a Std writing to stderr with the standard flags when l is nil.
func NewStd(l FmtLogger) *Std {
	if l == nil {
		l = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	}
	return &Std{L: l}
}

func (s *Std) Trace(msg string) { s.L.Printf("[TRACE] %s", msg) }
func (s *Std) Debug(msg string) { s.L.Printf("[DEBUG] %s", msg) }
func (s *Std) Info(msg string)  { s.L.Printf("[INFO] %s", msg) }
func (s *Std) Warn(msg string)  { s.L.Printf("[WARN] %s", msg) }
func (s *Std) Error(msg string) { s.L.Printf("[ERROR] %s", msg) }
func (s *Std) Fatal(msg string) { s.L.Printf("[FATAL] %s", msg) }
