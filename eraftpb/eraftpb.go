// Package eraftpb holds read-only views of the raft protocol records that the
// formatter package renders.
//
// Kind enums are the etcd raft enums, so rendered kinds use etcd's name
// tables (raftpb.EntryType_name, MessageType_name, ConfChangeType_name,
// ConfChangeTransition_name), not the raft-rs names. For example:
//
//	MsgApp, MsgAppResp           (raft-rs: MsgAppend, MsgAppendResponse)
//	MsgVote, MsgPreVote          (raft-rs: MsgRequestVote, MsgRequestPreVote)
//	ConfChangeAddNode            (raft-rs: AddNode)
//	ConfChangeAddLearnerNode     (raft-rs: AddLearnerNode)
//	ConfChangeTransitionAuto     (raft-rs: Auto)
//	EntryNormal, EntryConfChange (same in both)
//
// Values outside the table render as their decimal number.
package eraftpb

import (
	"fmt"
	"strings"

	"go.etcd.io/etcd/raft/v3/raftpb"
)

type (
	EntryType            = raftpb.EntryType
	MessageType          = raftpb.MessageType
	ConfChangeType       = raftpb.ConfChangeType
	ConfChangeTransition = raftpb.ConfChangeTransition
)

// Entry is a single raft log entry.
type Entry struct {
	EntryType EntryType
	Term      uint64
	Index     uint64
	Data      []byte
	Context   []byte
	SyncLog   bool
}

// ConfChange is a single-node membership change.
type ConfChange struct {
	ChangeType ConfChangeType
	NodeID     uint64
	Context    []byte
	ID         uint64
}

// ConfChangeSingle is one elemental change inside a ConfChangeV2.
type ConfChangeSingle struct {
	ChangeType ConfChangeType
	NodeID     uint64
}

func (c ConfChangeSingle) String() string {
	return fmt.Sprintf("ConfChangeSingle { change_type: %v, node_id: %d }", c.ChangeType, c.NodeID)
}

// ConfChangeV2 is a batch or joint membership change.
type ConfChangeV2 struct {
	Transition ConfChangeTransition
	Changes    []ConfChangeSingle
	Context    []byte
}

// ChangesString renders Changes as a bracketed list.
func (c ConfChangeV2) ChangesString() string {
	parts := make([]string, 0, len(c.Changes))
	for _, ch := range c.Changes {
		parts = append(parts, ch.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type ConfState struct {
	Voters         []uint64
	Learners       []uint64
	VotersOutgoing []uint64
	LearnersNext   []uint64
	AutoLeave      bool
}

func (c ConfState) String() string {
	return fmt.Sprintf(
		"ConfState { voters: %s, learners: %s, voters_outgoing: %s, learners_next: %s, auto_leave: %t }",
		idList(c.Voters), idList(c.Learners), idList(c.VotersOutgoing), idList(c.LearnersNext), c.AutoLeave,
	)
}

type SnapshotMetadata struct {
	ConfState ConfState
	Index     uint64
	Term      uint64
}

func (m SnapshotMetadata) String() string {
	return fmt.Sprintf("SnapshotMetadata { conf_state: %s, index: %d, term: %d }", m.ConfState, m.Index, m.Term)
}

// Snapshot is a state machine snapshot and the configuration it was taken at.
type Snapshot struct {
	Data     []byte
	Metadata SnapshotMetadata
}

// Message is a raft protocol message exchanged between peers.
type Message struct {
	MsgType            MessageType
	To                 uint64
	From               uint64
	Term               uint64
	LogTerm            uint64
	Index              uint64
	Entries            []Entry
	Commit             uint64
	CommitTerm         uint64
	Snapshot           *Snapshot
	RequestSnapshot    uint64
	Reject             bool
	RejectHint         uint64
	Context            []byte
	DeprecatedPriority uint64
	Priority           int64
}

// GetSnapshot returns the attached snapshot, or an empty one if there is none.
func (m *Message) GetSnapshot() Snapshot {
	if m == nil || m.Snapshot == nil {
		return Snapshot{}
	}
	return *m.Snapshot
}

func idList(ids []uint64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteByte(']')
	return b.String()
}
