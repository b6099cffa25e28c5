package formatter

import (
	"fmt"
	"strings"

	"github.com/dforsyth/raftfmt/eraftpb"
)

// Bound renders records with a single formatter. The zero value uses
// DefaultFormatter. Bound takes no locks and is safe to copy.
type Bound struct {
	Formatter CustomFormatter
}

func (b Bound) formatter() CustomFormatter {
	if b.Formatter == nil {
		return DefaultFormatter{}
	}
	return b.Formatter
}

func (b Bound) FormatEntry(e *eraftpb.Entry) string {
	if e == nil {
		e = &eraftpb.Entry{}
	}
	f := b.formatter()

	return fmt.Sprintf(
		"Entry { context: %s, data: %s, entry_type: %v, index: %d, sync_log: %t, term: %d }",
		f.FormatEntryContext(FromSlice(e.Context)),
		f.FormatEntryData(FromSlice(e.Data)),
		e.EntryType,
		e.Index,
		e.SyncLog,
		e.Term,
	)
}

func (b Bound) FormatConfChange(cc *eraftpb.ConfChange) string {
	if cc == nil {
		cc = &eraftpb.ConfChange{}
	}

	return fmt.Sprintf(
		"ConfChange { change_type: %v, node_id: %d, context: %s, id: %d }",
		cc.ChangeType,
		cc.NodeID,
		b.formatter().FormatConfChangeContext(FromSlice(cc.Context)),
		cc.ID,
	)
}

func (b Bound) FormatConfChangeV2(cc *eraftpb.ConfChangeV2) string {
	if cc == nil {
		cc = &eraftpb.ConfChangeV2{}
	}

	return fmt.Sprintf(
		"ConfChangeV2 { transition: %v, changes: %s, context: %s }",
		cc.Transition,
		cc.ChangesString(),
		b.formatter().FormatConfChangeV2Context(FromSlice(cc.Context)),
	)
}

func (b Bound) FormatSnapshot(s *eraftpb.Snapshot) string {
	if s == nil {
		s = &eraftpb.Snapshot{}
	}

	return fmt.Sprintf(
		"Snapshot { data: %s, metadata: %s }",
		b.formatter().FormatSnapshotData(FromSlice(s.Data)),
		s.Metadata,
	)
}

func (b Bound) FormatMessage(m *eraftpb.Message) string {
	if m == nil {
		m = &eraftpb.Message{}
	}
	f := b.formatter()

	entries := make([]string, 0, len(m.Entries))
	for i := range m.Entries {
		entries = append(entries, b.FormatEntry(&m.Entries[i]))
	}
	snap := m.GetSnapshot()

	return fmt.Sprintf(
		"Message { msg_type: %v, to: %d, from: %d, term: %d, log_term: %d, index: %d, entries: [%s], commit: %d, commit_term: %d, snapshot: %s, request_snapshot: %d, reject: %t, reject_hint: %d, context: %s, deprecated_priority: %d, priority: %d }",
		m.MsgType,
		m.To,
		m.From,
		m.Term,
		m.LogTerm,
		m.Index,
		strings.Join(entries, ", "),
		m.Commit,
		m.CommitTerm,
		b.FormatSnapshot(&snap),
		m.RequestSnapshot,
		m.Reject,
		m.RejectHint,
		f.FormatMessageContext(FromSlice(m.Context)),
		m.DeprecatedPriority,
		m.Priority,
	)
}
