package eraftpb

import "go.etcd.io/etcd/raft/v3/raftpb"

// FromEntry converts an etcd raft entry. Context and SyncLog have no etcd
// counterpart and are left empty.
func FromEntry(e raftpb.Entry) Entry {
	return Entry{
		EntryType: e.Type,
		Term:      e.Term,
		Index:     e.Index,
		Data:      e.Data,
	}
}

func FromConfChange(cc raftpb.ConfChange) ConfChange {
	return ConfChange{
		ChangeType: cc.Type,
		NodeID:     cc.NodeID,
		Context:    cc.Context,
		ID:         cc.ID,
	}
}

func FromConfChangeV2(cc raftpb.ConfChangeV2) ConfChangeV2 {
	out := ConfChangeV2{
		Transition: cc.Transition,
		Context:    cc.Context,
	}
	for _, ch := range cc.Changes {
		out.Changes = append(out.Changes, ConfChangeSingle{ChangeType: ch.Type, NodeID: ch.NodeID})
	}
	return out
}

func FromSnapshot(s raftpb.Snapshot) Snapshot {
	cs := s.Metadata.ConfState
	return Snapshot{
		Data: s.Data,
		Metadata: SnapshotMetadata{
			ConfState: ConfState{
				Voters:         cs.Voters,
				Learners:       cs.Learners,
				VotersOutgoing: cs.VotersOutgoing,
				LearnersNext:   cs.LearnersNext,
				AutoLeave:      cs.AutoLeave,
			},
			Index: s.Metadata.Index,
			Term:  s.Metadata.Term,
		},
	}
}

// FromMessage converts an etcd raft message. Fields etcd does not carry
// (CommitTerm, RequestSnapshot, priorities) are zero. The snapshot is only
// attached for MsgSnap, the one message type that carries it.
func FromMessage(m raftpb.Message) Message {
	out := Message{
		MsgType:    m.Type,
		To:         m.To,
		From:       m.From,
		Term:       m.Term,
		LogTerm:    m.LogTerm,
		Index:      m.Index,
		Commit:     m.Commit,
		Reject:     m.Reject,
		RejectHint: m.RejectHint,
		Context:    m.Context,
	}
	for _, e := range m.Entries {
		out.Entries = append(out.Entries, FromEntry(e))
	}
	if m.Type == raftpb.MsgSnap {
		snap := FromSnapshot(m.Snapshot)
		out.Snapshot = &snap
	}
	return out
}
