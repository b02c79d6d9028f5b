package tree

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/richdoc/document"
)

// OpKind identifies a primitive operation applied to the tree.
type OpKind uint8

const (
	OpSetNode OpKind = iota
	OpInsertNode
	OpRemoveNode
	OpWrapNodes
	OpUnwrapNodes
	OpSplitNode
	OpMergeNode
	OpInsertText
	OpRemoveText
	OpSetMarks
)

var opNames = [...]string{
	OpSetNode:     "set_node",
	OpInsertNode:  "insert_node",
	OpRemoveNode:  "remove_node",
	OpWrapNodes:   "wrap_nodes",
	OpUnwrapNodes: "unwrap_nodes",
	OpSplitNode:   "split_node",
	OpMergeNode:   "merge_node",
	OpInsertText:  "insert_text",
	OpRemoveText:  "remove_text",
	OpSetMarks:    "set_marks",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one primitive operation. Path is the target as addressed when the
// operation ran; Detail carries the type, mark or text involved.
type Op struct {
	Kind   OpKind
	Path   document.Path
	Detail string
}

// SelectionState captures the selection at a point in time.
type SelectionState struct {
	Active bool
	Range  document.Range
}

// Change describes one effective mutation of the session.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	Ops             []Op
}

type changeBuilder struct {
	versionBefore   uint64
	selectionBefore SelectionState
	ops             []Op
}

// LastChange returns the most recent effective change.
func (s *Session) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return cloneChange(s.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.Ops = make([]Op, 0, len(in.Ops))
	for _, op := range in.Ops {
		op.Path = op.Path.Copy()
		out.Ops = append(out.Ops, op)
	}
	return out
}

func (s *Session) selectionState() SelectionState {
	r, ok := s.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (s *Session) begin() {
	s.change = &changeBuilder{
		versionBefore:   s.version,
		selectionBefore: s.selectionState(),
	}
}

func (s *Session) record(kind OpKind, p document.Path, detail string) {
	s.log.Debug("tree op",
		zap.Stringer("op", kind),
		zap.Ints("path", []int(p)),
		zap.String("detail", detail),
	)
	if s.change != nil {
		s.change.ops = append(s.change.ops, Op{Kind: kind, Path: p.Copy(), Detail: detail})
	}
}

// finish normalizes the tree and commits the in-flight change. Mutations
// that recorded no operation leave the version untouched.
func (s *Session) finish() {
	cb := s.change
	if cb == nil {
		return
	}
	if len(cb.ops) > 0 {
		s.normalize()
		s.repairSelection()
	}
	s.change = nil
	if len(cb.ops) == 0 {
		return
	}

	s.version++
	s.lastChange = Change{
		VersionBefore:   cb.versionBefore,
		VersionAfter:    s.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  s.selectionState(),
		Ops:             append([]Op(nil), cb.ops...),
	}
	s.hasLastChange = true
}
