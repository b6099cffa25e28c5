package log

import (
	"github.com/sirupsen/logrus"
)

// Logrus adapts a logrus entry.
type Logrus struct {
	E *logrus.Entry
}

func NewLogrus(l *logrus.Logger) *Logrus {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Logrus{E: logrus.NewEntry(l)}
}

func (l *Logrus) Trace(msg string) { l.E.Trace(msg) }
func (l *Logrus) Debug(msg string) { l.E.Debug(msg) }
func (l *Logrus) Info(msg string)  { l.E.Info(msg) }
func (l *Logrus) Warn(msg string)  { l.E.Warn(msg) }
func (l *Logrus) Error(msg string) { l.E.Error(msg) }

// Fatal logs at FatalLevel without calling logrus' exit handler.
func (l *Logrus) Fatal(msg string) { l.E.Log(logrus.FatalLevel, msg) }
