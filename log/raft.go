package log

import (
	"fmt"
	"os"

	"go.etcd.io/etcd/raft/v3"
)

var _ raft.Logger = (*RaftLogger)(nil)

// RaftLogger lets a Logger be installed as an etcd raft logger. etcd expects
// Fatal to exit and Panic to panic, so RaftLogger does both after logging at
// fatal.
type RaftLogger struct {
	L Logger

	exit func(int)
}

func NewRaftLogger(l Logger) *RaftLogger {
	return &RaftLogger{L: l, exit: os.Exit}
}

func (r *RaftLogger) Debug(v ...interface{})                 { r.L.Debug(fmt.Sprint(v...)) }
func (r *RaftLogger) Debugf(format string, v ...interface{}) { r.L.Debug(fmt.Sprintf(format, v...)) }

func (r *RaftLogger) Info(v ...interface{})                 { r.L.Info(fmt.Sprint(v...)) }
func (r *RaftLogger) Infof(format string, v ...interface{}) { r.L.Info(fmt.Sprintf(format, v...)) }

func (r *RaftLogger) Warning(v ...interface{})                 { r.L.Warn(fmt.Sprint(v...)) }
func (r *RaftLogger) Warningf(format string, v ...interface{}) { r.L.Warn(fmt.Sprintf(format, v...)) }

func (r *RaftLogger) Error(v ...interface{})                 { r.L.Error(fmt.Sprint(v...)) }
func (r *RaftLogger) Errorf(format string, v ...interface{}) { r.L.Error(fmt.Sprintf(format, v...)) }

func (r *RaftLogger) Fatal(v ...interface{}) {
	r.L.Fatal(fmt.Sprint(v...))
	r.doExit()
}

func (r *RaftLogger) Fatalf(format string, v ...interface{}) {
	r.L.Fatal(fmt.Sprintf(format, v...))
	r.doExit()
}

func (r *RaftLogger) Panic(v ...interface{}) {
	s := fmt.Sprint(v...)
	r.L.Fatal(s)
	panic(s)
}

func (r *RaftLogger) Panicf(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	r.L.Fatal(s)
	panic(s)
}

func (r *RaftLogger) doExit() {
	if r.exit == nil {
		os.Exit(1)
	}
	r.exit(1)
}
