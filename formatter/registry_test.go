package formatter

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dforsyth/raftfmt/eraftpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/raft/v3/raftpb"
	"golang.org/x/sync/errgroup"
)

func constFormatter(s string) CustomFormatter {
	return Uniform(func(Bytes) string { return s })
}

// A reader racing Set must render every payload site of one message with the
// same formatter.
func TestConcurrentSetAndFormat(t *testing.T) {
	r := NewRegistry(WithFormatter(constFormatter("AAAA")))
	m := &eraftpb.Message{
		MsgType: raftpb.MsgApp,
		Entries: []eraftpb.Entry{{Index: 1}, {Index: 2}, {Index: 3}},
		Context: []byte("c"),
	}

	var done int32
	var g errgroup.Group

	g.Go(func() error {
		defer atomic.StoreInt32(&done, 1)
		for i := 0; i < 2000; i++ {
			if i%2 == 0 {
				r.Set(constFormatter("BBBB"))
			} else {
				r.Set(constFormatter("AAAA"))
			}
		}
		return nil
	})

	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for atomic.LoadInt32(&done) == 0 {
				out := r.FormatMessage(m)
				a, b := strings.Count(out, "AAAA"), strings.Count(out, "BBBB")
				// 3 entries * 2 sites + snapshot data + message context
				if !(a == 8 && b == 0) && !(a == 0 && b == 8) {
					t.Errorf("mixed formatters in one render: %s", out)
					return nil
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestSetVisibleImmediately(t *testing.T) {
	r := NewRegistry()
	e := &eraftpb.Entry{Data: []byte{1}}
	for i := 0; i < 100; i++ {
		r.Set(constFormatter("one"))
		assert.Contains(t, r.FormatEntry(e), "data: one")
		r.Set(constFormatter("two"))
		assert.Contains(t, r.FormatEntry(e), "data: two")
	}
}

func TestZeroValueRegistry(t *testing.T) {
	var r Registry
	assert.Equal(t, DefaultFormatter{}, r.Formatter())
	assert.Equal(t, NewRegistry().FormatMessage(nil), r.FormatMessage(nil))

	assert.NotPanics(t, func() { r.Set(HexFormatter) })
	assert.Contains(t, r.FormatEntry(&eraftpb.Entry{Data: []byte{1}}), "data: 0x01")
}

func TestWithNilLogger(t *testing.T) {
	r := NewRegistry(WithLogger(nil))
	assert.NotPanics(t, func() { r.Set(HexFormatter) })
	assert.Contains(t, r.FormatEntry(&eraftpb.Entry{Data: []byte{1}}), "data: 0x01")
}
