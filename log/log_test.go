package log

import (
	"bytes"
	stdlog "log"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Trace(msg string) { m.MethodCalled("trace", msg) }
func (m *mockLogger) Debug(msg string) { m.MethodCalled("debug", msg) }
func (m *mockLogger) Info(msg string)  { m.MethodCalled("info", msg) }
func (m *mockLogger) Warn(msg string)  { m.MethodCalled("warn", msg) }
func (m *mockLogger) Error(msg string) { m.MethodCalled("error", msg) }
func (m *mockLogger) Fatal(msg string) { m.MethodCalled("fatal", msg) }

func newMockLogger() *mockLogger {
	l := &mockLogger{}
	l.On("trace", mock.Anything).Return()
	l.On("debug", mock.Anything).Return()
	l.On("info", mock.Anything).Return()
	l.On("warn", mock.Anything).Return()
	l.On("error", mock.Anything).Return()
	l.On("fatal", mock.Anything).Return()
	return l
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
		got, err := ParseLevel(lvl.String())
		require.NoError(t, err)
		assert.Equal(t, lvl, got)
	}

	got, err := ParseLevel(" WARNING ")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, got)

	_, err = ParseLevel("loud")
	require.Error(t, err)
	var ule UnknownLevelError
	assert.ErrorAs(t, err, &ule)
	assert.Equal(t, "loud", ule.Name)

	assert.Equal(t, "unknown", Level(42).String())
}

func TestLogDispatch(t *testing.T) {
	l := newMockLogger()
	for _, lvl := range []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
		Log(l, lvl, "msg "+lvl.String())
		l.AssertCalled(t, lvl.String(), "msg "+lvl.String())
	}
	Log(l, Level(99), "odd")
	l.AssertCalled(t, "error", "odd")
	l.AssertNumberOfCalls(t, "info", 1)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Log(Discard, FatalLevel, "gone")
		Discard.Trace("gone")
	})
}

func TestStd(t *testing.T) {
	var buf bytes.Buffer
	s := NewStd(stdlog.New(&buf, "", 0))

	s.Info("x")
	s.Fatal("100% %d")
	assert.Equal(t, "[INFO] x\n[FATAL] 100% %d\n", buf.String())
}

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := NewZap(zap.New(core))

	z.Info("x")
	all := logs.TakeAll()
	require.Len(t, all, 1)
	assert.Equal(t, zapcore.InfoLevel, all[0].Level)
	assert.Equal(t, "x", all[0].Message)

	z.Trace("t")
	all = logs.TakeAll()
	require.Len(t, all, 1)
	assert.Equal(t, zapcore.DebugLevel, all[0].Level)
	assert.Equal(t, "trace", all[0].ContextMap()["severity"])

	z.Debug("d")
	z.Warn("w")
	z.Error("e")
	all = logs.TakeAll()
	require.Len(t, all, 3)
	assert.Equal(t, zapcore.WarnLevel, all[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, all[2].Level)

	// Must return rather than exit the test binary.
	z.Fatal("f")
	all = logs.TakeAll()
	require.Len(t, all, 1)
	assert.Equal(t, zapcore.ErrorLevel, all[0].Level)
	assert.Equal(t, "f", all[0].Message)
	assert.Equal(t, "fatal", all[0].ContextMap()["severity"])
}

func TestZapFatalKeepsLoggerName(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := NewZap(zap.New(core).Named("raftfmtctl"))

	z.Fatal("f")
	z.Info("i")
	all := logs.TakeAll()
	require.Len(t, all, 2)
	for _, e := range all {
		assert.Equal(t, "raftfmtctl", e.LoggerName)
	}
}

func TestZapDisabledLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	z := NewZap(zap.New(core))

	z.Trace("t")
	z.Debug("d")
	assert.Equal(t, 0, logs.Len())
}

func TestLogrus(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	l := NewLogrus(logger)

	levels := map[Level]logrus.Level{
		TraceLevel: logrus.TraceLevel,
		DebugLevel: logrus.DebugLevel,
		InfoLevel:  logrus.InfoLevel,
		WarnLevel:  logrus.WarnLevel,
		ErrorLevel: logrus.ErrorLevel,
		FatalLevel: logrus.FatalLevel,
	}
	for lvl, want := range levels {
		hook.Reset()
		Log(l, lvl, "m")
		require.Len(t, hook.AllEntries(), 1)
		assert.Equal(t, want, hook.LastEntry().Level)
		assert.Equal(t, "m", hook.LastEntry().Message)
	}
}

func TestHclog(t *testing.T) {
	var buf bytes.Buffer
	h := NewHclog(hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Trace,
	}))

	h.Trace("t")
	assert.Contains(t, buf.String(), "[TRACE] t")

	buf.Reset()
	h.Fatal("f")
	assert.Contains(t, buf.String(), "[ERROR] f")
	assert.Contains(t, buf.String(), "severity=fatal")
}

func TestRaftLogger(t *testing.T) {
	l := newMockLogger()
	r := NewRaftLogger(l)

	r.Debugf("a %d", 1)
	l.AssertCalled(t, "debug", "a 1")
	r.Info("b", 2)
	l.AssertCalled(t, "info", "b2")
	r.Warningf("c")
	l.AssertCalled(t, "warn", "c")
	r.Error("d")
	l.AssertCalled(t, "error", "d")

	var code int
	r.exit = func(c int) { code = c }
	r.Fatalf("e %s", "x")
	l.AssertCalled(t, "fatal", "e x")
	assert.Equal(t, 1, code)

	assert.PanicsWithValue(t, "boom", func() { r.Panicf("b%s", "oom") })
	l.AssertCalled(t, "fatal", "boom")
}
