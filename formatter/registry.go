// Package formatter renders raft protocol records as single-line diagnostic
// strings. How opaque payloads are shown is decided by a swappable
// CustomFormatter held in a Registry.
package formatter

import (
	"fmt"
	"sync"

	"github.com/dforsyth/raftfmt/eraftpb"
	"github.com/dforsyth/raftfmt/log"
)

// Registry holds the active CustomFormatter. It is safe for concurrent use;
// every render call sees exactly one formatter from start to finish. The zero
// value renders with DefaultFormatter and logs nothing.
type Registry struct {
	formatter CustomFormatter
	lk        sync.RWMutex

	logger log.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

func WithFormatter(f CustomFormatter) RegistryOption {
	return func(r *Registry) {
		if f != nil {
			r.formatter = f
		}
	}
}

// WithLogger sets the logger formatter swaps are reported to. A nil logger
// means log.Discard.
func WithLogger(logger log.Logger) RegistryOption {
	return func(r *Registry) {
		if logger == nil {
			logger = log.Discard
		}
		r.logger = logger
	}
}

// NewRegistry creates a Registry that starts out with DefaultFormatter.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		formatter: DefaultFormatter{},
		logger:    log.Discard,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Set replaces the active formatter. A nil f restores DefaultFormatter.
func (r *Registry) Set(f CustomFormatter) {
	if f == nil {
		f = DefaultFormatter{}
	}

	r.lk.Lock()
	r.formatter = f
	r.lk.Unlock()

	if r.logger == nil {
		return
	}
	r.logger.Debug(fmt.Sprintf("custom formatter set to %T", f))
}

// Formatter returns the active formatter.
func (r *Registry) Formatter() CustomFormatter {
	r.lk.RLock()
	defer r.lk.RUnlock()
	if r.formatter == nil {
		return DefaultFormatter{}
	}
	return r.formatter
}

// Bind captures the active formatter. Later calls to Set do not affect the
// returned Bound.
func (r *Registry) Bind() Bound {
	return Bound{Formatter: r.Formatter()}
}

func (r *Registry) FormatEntry(e *eraftpb.Entry) string { return r.Bind().FormatEntry(e) }

func (r *Registry) FormatConfChange(cc *eraftpb.ConfChange) string {
	return r.Bind().FormatConfChange(cc)
}

func (r *Registry) FormatConfChangeV2(cc *eraftpb.ConfChangeV2) string {
	return r.Bind().FormatConfChangeV2(cc)
}

func (r *Registry) FormatSnapshot(s *eraftpb.Snapshot) string { return r.Bind().FormatSnapshot(s) }

func (r *Registry) FormatMessage(m *eraftpb.Message) string { return r.Bind().FormatMessage(m) }

var std = NewRegistry()

// Default returns the process-wide registry used by the package level
// functions.
func Default() *Registry { return std }

// SetCustomFormatter replaces the process-wide formatter. It is visible to
// every Format call that starts after it returns.
func SetCustomFormatter(f CustomFormatter) { std.Set(f) }

func FormatEntry(e *eraftpb.Entry) string                { return std.FormatEntry(e) }
func FormatConfChange(cc *eraftpb.ConfChange) string     { return std.FormatConfChange(cc) }
func FormatConfChangeV2(cc *eraftpb.ConfChangeV2) string { return std.FormatConfChangeV2(cc) }
func FormatSnapshot(s *eraftpb.Snapshot) string          { return std.FormatSnapshot(s) }
func FormatMessage(m *eraftpb.Message) string            { return std.FormatMessage(m) }
