package log

import (
	"github.com/hashicorp/go-hclog"
)

// Hclog adapts a hashicorp logger. hclog stops at error, so fatal messages are
// written at error with a severity pair.
type Hclog struct {
	L hclog.Logger
}

func NewHclog(l hclog.Logger) *Hclog {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	return &Hclog{L: l}
}

func (h *Hclog) Trace(msg string) { h.L.Trace(msg) }
func (h *Hclog) Debug(msg string) { h.L.Debug(msg) }
func (h *Hclog) Info(msg string)  { h.L.Info(msg) }
func (h *Hclog) Warn(msg string)  { h.L.Warn(msg) }
func (h *Hclog) Error(msg string) { h.L.Error(msg) }
func (h *Hclog) Fatal(msg string) { h.L.Error(msg, "severity", FatalLevel.String()) }
