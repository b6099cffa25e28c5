package log

import (
	"go.uber.org/zap"
)

// Zap adapts a zap logger. zap has no trace level, so trace messages are
// written at debug with a severity field; fatal messages likewise go to error.
type Zap struct {
	L *zap.Logger
}

func NewZap(l *zap.Logger) *Zap {
	if l == nil {
		l = zap.NewNop()
	}
	return &Zap{L: l}
}

func (z *Zap) Trace(msg string) { z.L.Debug(msg, zap.String("severity", TraceLevel.String())) }
func (z *Zap) Debug(msg string) { z.L.Debug(msg) }
func (z *Zap) Info(msg string)  { z.L.Info(msg) }
func (z *Zap) Warn(msg string)  { z.L.Warn(msg) }
func (z *Zap) Error(msg string) { z.L.Error(msg) }

// Fatal writes at error with a severity field, since (*zap.Logger).Fatal
// exits the process.
func (z *Zap) Fatal(msg string) { z.L.Error(msg, zap.String("severity", FatalLevel.String())) }
