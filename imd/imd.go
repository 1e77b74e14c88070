package imd

import (
	"errors"
	"fmt"

	"github.com/procmine/procmine/cuts"
	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/ptree"
)

// ErrInvariantViolation indicates that a cut produced a partition that lost
// or duplicated activities of its cluster. It marks a defect in the cut
// finders, never bad input, and halts discovery.
var ErrInvariantViolation = errors.New("imd: cut partition lost or duplicated activities")

// finder pairs a cut function with the operator of the node it justifies.
// The slice below fixes the cut priority; it is never reordered.
type finder struct {
	op  ptree.Operator
	cut func(*eventlog.DFG, []eventlog.Activity) ([][]eventlog.Activity, bool)
}

var finders = []finder{
	{ptree.OpXor, cuts.Exclusive},
	{ptree.OpSeq, cuts.Sequence},
	{ptree.OpPar, cuts.Parallel},
	{ptree.OpLoop, cuts.Loop},
}

// Discover mines the event log and returns its process tree. Every activity
// of the log appears exactly once among the leaves of the result.
//
// Returns eventlog.ErrEmptyLog or eventlog.ErrEmptyTrace for rejected
// input, and ErrInvariantViolation if a cut misbehaves.
func Discover(log eventlog.Log) (*ptree.Node, error) {
	g, err := eventlog.Build(log)
	if err != nil {
		return nil, err
	}

	return Mine(g)
}

// Mine runs the discovery recursion over a prebuilt directly-follows graph,
// starting from the full alphabet.
func Mine(g *eventlog.DFG) (*ptree.Node, error) {
	if g.Size() == 0 {
		return nil, eventlog.ErrEmptyLog
	}

	return mine(g, g.Alphabet())
}

// mine resolves one cluster: base case, cut dispatch, flower fallback.
func mine(g *eventlog.DFG, cluster []eventlog.Activity) (*ptree.Node, error) {
	// 1. Base case: a lone activity without a self-loop is a leaf. A
	// self-looping activity still has loop structure and falls through.
	if len(cluster) == 1 && !g.HasEdge(cluster[0], cluster[0]) {
		return ptree.Leaf(cluster[0]), nil
	}

	// 2. Fixed-priority dispatch; the first genuine partition wins.
	var f finder
	for _, f = range finders {
		parts, ok := f.cut(g, cluster)
		if !ok {
			continue
		}
		if err := verifyPartition(cluster, parts); err != nil {
			return nil, fmt.Errorf("%s cut over %d activities: %w", f.op, len(cluster), err)
		}

		children := make([]*ptree.Node, len(parts))
		var err error
		for i, part := range parts {
			if children[i], err = mine(g, part); err != nil {
				return nil, err
			}
		}

		return &ptree.Node{Op: f.op, Children: children}, nil
	}

	// 3. Fallback: the flower loop, one leaf per activity in canonical
	// order. All children are leaves, so the recursion ends here.
	leaves := make([]*ptree.Node, len(cluster))
	for i, a := range cluster {
		leaves[i] = ptree.Leaf(a)
	}

	return ptree.Loop(leaves...), nil
}

// verifyPartition checks that parts cover cluster exactly: every activity
// in exactly one part, nothing foreign added.
func verifyPartition(cluster []eventlog.Activity, parts [][]eventlog.Activity) error {
	seen := make(map[eventlog.Activity]struct{}, len(cluster))
	total := 0

	var part []eventlog.Activity
	var a eventlog.Activity
	for _, part = range parts {
		for _, a = range part {
			if _, dup := seen[a]; dup {
				return ErrInvariantViolation
			}
			seen[a] = struct{}{}
			total++
		}
	}

	if total != len(cluster) {
		return ErrInvariantViolation
	}
	for _, a = range cluster {
		if _, ok := seen[a]; !ok {
			return ErrInvariantViolation
		}
	}

	return nil
}
