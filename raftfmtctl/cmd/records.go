package cmd

import (
	"strconv"
	"strings"

	"github.com/dforsyth/raftfmt/eraftpb"
	"github.com/dforsyth/raftfmt/formatter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.etcd.io/etcd/raft/v3/raftpb"
)

func EntryCmd(opts *options) *cobra.Command {
	var (
		entryType     string
		data, context string
		e             eraftpb.Entry
	)

	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Render a log entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookup("entry type", raftpb.EntryType_value, entryType)
			if err != nil {
				return err
			}
			e.EntryType = raftpb.EntryType(t)
			if e.Data, err = opts.payload(data); err != nil {
				return err
			}
			if e.Context, err = opts.payload(context); err != nil {
				return err
			}
			return opts.emit(cmd, func(b formatter.Bound) string { return b.FormatEntry(&e) })
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&entryType, "type", raftpb.EntryNormal.String(), "entry type")
	flags.Uint64Var(&e.Term, "term", 0, "entry term")
	flags.Uint64Var(&e.Index, "index", 0, "entry index")
	flags.BoolVar(&e.SyncLog, "sync-log", false, "entry must be synced")
	flags.StringVar(&data, "data", "", "entry data")
	flags.StringVar(&context, "context", "", "entry context")
	return cmd
}

func ConfChangeCmd(opts *options) *cobra.Command {
	var (
		changeType string
		context    string
		cc         eraftpb.ConfChange
	)

	cmd := &cobra.Command{
		Use:   "confchange",
		Short: "Render a single membership change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookup("change type", raftpb.ConfChangeType_value, changeType)
			if err != nil {
				return err
			}
			cc.ChangeType = raftpb.ConfChangeType(t)
			if cc.Context, err = opts.payload(context); err != nil {
				return err
			}
			return opts.emit(cmd, func(b formatter.Bound) string { return b.FormatConfChange(&cc) })
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&changeType, "type", raftpb.ConfChangeAddNode.String(), "change type")
	flags.Uint64Var(&cc.NodeID, "node-id", 0, "target node")
	flags.Uint64Var(&cc.ID, "id", 0, "change id")
	flags.StringVar(&context, "context", "", "change context")
	return cmd
}

// parseChange parses TYPE:NODE, e.g. ConfChangeAddNode:4.
func parseChange(s string) (eraftpb.ConfChangeSingle, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return eraftpb.ConfChangeSingle{}, errors.Errorf("change %q is not TYPE:NODE", s)
	}
	t, err := lookup("change type", raftpb.ConfChangeType_value, s[:i])
	if err != nil {
		return eraftpb.ConfChangeSingle{}, err
	}
	id, err := strconv.ParseUint(s[i+1:], 10, 64)
	if err != nil {
		return eraftpb.ConfChangeSingle{}, errors.Wrapf(err, "change %q", s)
	}
	return eraftpb.ConfChangeSingle{ChangeType: raftpb.ConfChangeType(t), NodeID: id}, nil
}

func ConfChangeV2Cmd(opts *options) *cobra.Command {
	var (
		transition string
		changes    []string
		context    string
	)

	cmd := &cobra.Command{
		Use:   "confchangev2",
		Short: "Render a batch or joint membership change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookup("transition", raftpb.ConfChangeTransition_value, transition)
			if err != nil {
				return err
			}
			cc := eraftpb.ConfChangeV2{Transition: raftpb.ConfChangeTransition(t)}
			for _, s := range changes {
				ch, err := parseChange(s)
				if err != nil {
					return err
				}
				cc.Changes = append(cc.Changes, ch)
			}
			if cc.Context, err = opts.payload(context); err != nil {
				return err
			}
			return opts.emit(cmd, func(b formatter.Bound) string { return b.FormatConfChangeV2(&cc) })
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&transition, "transition", raftpb.ConfChangeTransitionAuto.String(), "transition kind")
	flags.StringArrayVar(&changes, "change", nil, "change as TYPE:NODE, repeatable")
	flags.StringVar(&context, "context", "", "change context")
	return cmd
}

func toIDs(ids []uint) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		out = append(out, uint64(id))
	}
	return out
}

type snapshotFlags struct {
	data     string
	index    uint64
	term     uint64
	voters   []uint
	learners []uint
}

func (f *snapshotFlags) register(cmd *cobra.Command, prefix string) {
	flags := cmd.Flags()
	flags.StringVar(&f.data, prefix+"data", "", "snapshot data")
	flags.Uint64Var(&f.index, prefix+"index", 0, "snapshot index")
	flags.Uint64Var(&f.term, prefix+"term", 0, "snapshot term")
	flags.UintSliceVar(&f.voters, prefix+"voters", nil, "voters in the snapshot configuration")
	flags.UintSliceVar(&f.learners, prefix+"learners", nil, "learners in the snapshot configuration")
}

func (f *snapshotFlags) snapshot(opts *options) (*eraftpb.Snapshot, error) {
	data, err := opts.payload(f.data)
	if err != nil {
		return nil, err
	}
	return &eraftpb.Snapshot{
		Data: data,
		Metadata: eraftpb.SnapshotMetadata{
			ConfState: eraftpb.ConfState{
				Voters:   toIDs(f.voters),
				Learners: toIDs(f.learners),
			},
			Index: f.index,
			Term:  f.term,
		},
	}, nil
}

func SnapshotCmd(opts *options) *cobra.Command {
	sf := &snapshotFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sf.snapshot(opts)
			if err != nil {
				return err
			}
			return opts.emit(cmd, func(b formatter.Bound) string { return b.FormatSnapshot(s) })
		},
	}

	sf.register(cmd, "")
	return cmd
}

func MessageCmd(opts *options) *cobra.Command {
	var (
		msgType string
		entries []string
		context string
		m       eraftpb.Message
		sf      snapshotFlags
	)

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Render a protocol message",
		Long: "Render a protocol message. Each --entry becomes a normal entry at the " +
			"message term, indexed from --index+1. Any --snapshot-* flag attaches a snapshot.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookup("message type", raftpb.MessageType_value, msgType)
			if err != nil {
				return err
			}
			m.MsgType = raftpb.MessageType(t)
			for i, s := range entries {
				data, err := opts.payload(s)
				if err != nil {
					return err
				}
				m.Entries = append(m.Entries, eraftpb.Entry{
					Term:  m.Term,
					Index: m.Index + uint64(i) + 1,
					Data:  data,
				})
			}
			if m.Context, err = opts.payload(context); err != nil {
				return err
			}
			if snapshotRequested(cmd) {
				if m.Snapshot, err = sf.snapshot(opts); err != nil {
					return err
				}
			}
			return opts.emit(cmd, func(b formatter.Bound) string { return b.FormatMessage(&m) })
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&msgType, "type", raftpb.MsgHup.String(), "message type")
	flags.Uint64Var(&m.To, "to", 0, "recipient")
	flags.Uint64Var(&m.From, "from", 0, "sender")
	flags.Uint64Var(&m.Term, "term", 0, "message term")
	flags.Uint64Var(&m.LogTerm, "log-term", 0, "log term")
	flags.Uint64Var(&m.Index, "index", 0, "log index")
	flags.Uint64Var(&m.Commit, "commit", 0, "commit index")
	flags.Uint64Var(&m.CommitTerm, "commit-term", 0, "commit term")
	flags.Uint64Var(&m.RequestSnapshot, "request-snapshot", 0, "requested snapshot index")
	flags.BoolVar(&m.Reject, "reject", false, "reject flag")
	flags.Uint64Var(&m.RejectHint, "reject-hint", 0, "reject hint")
	flags.Uint64Var(&m.DeprecatedPriority, "deprecated-priority", 0, "deprecated priority")
	flags.Int64Var(&m.Priority, "priority", 0, "priority")
	flags.StringArrayVar(&entries, "entry", nil, "entry data, repeatable")
	flags.StringVar(&context, "context", "", "message context")
	sf.register(cmd, "snapshot-")
	return cmd
}

func snapshotRequested(cmd *cobra.Command) bool {
	for _, name := range []string{"snapshot-data", "snapshot-index", "snapshot-term", "snapshot-voters", "snapshot-learners"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
