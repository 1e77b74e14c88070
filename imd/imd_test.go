package imd_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/imd"
	"github.com/procmine/procmine/ptree"
)

// mkLog builds a Log from string-slice literals.
func mkLog(traces ...[]string) eventlog.Log {
	log := make(eventlog.Log, len(traces))
	for i, tr := range traces {
		log[i] = make(eventlog.Trace, len(tr))
		for j, a := range tr {
			log[i][j] = eventlog.Activity(a)
		}
	}

	return log
}

// discover is a require-wrapped imd.Discover.
func discover(t *testing.T, log eventlog.Log) *ptree.Node {
	t.Helper()
	tree, err := imd.Discover(log)
	require.NoError(t, err)
	require.NotNil(t, tree)

	return tree
}

func TestDiscover_EmptyLog(t *testing.T) {
	tree, err := imd.Discover(nil)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, eventlog.ErrEmptyLog)
}

func TestDiscover_EmptyTrace(t *testing.T) {
	tree, err := imd.Discover(eventlog.Log{{}})
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, eventlog.ErrEmptyTrace)
}

// S6: a single activity yields a bare leaf.
func TestDiscover_SingleActivity(t *testing.T) {
	tree := discover(t, mkLog([]string{"a"}))
	assert.Equal(t, "a", tree.String())
}

// A lone self-looping activity is not a leaf: it keeps loop structure.
func TestDiscover_SingleActivitySelfLoop(t *testing.T) {
	tree := discover(t, mkLog([]string{"a", "a"}))
	assert.Equal(t, "⟲(a)", tree.String())
	assert.Equal(t, ptree.OpLoop, tree.Op)
	assert.Len(t, tree.Children, 1)
}

// S1: a plain chain becomes a sequence of leaves.
func TestDiscover_Sequence(t *testing.T) {
	tree := discover(t, mkLog([]string{"a", "b", "c", "d"}))
	assert.Equal(t, "a · b · c · d", tree.String())
}

// S2: b and c interleave, giving a parallel block inside the sequence.
func TestDiscover_Parallel(t *testing.T) {
	tree := discover(t, mkLog(
		[]string{"a", "b", "c", "d"},
		[]string{"a", "c", "b", "d"},
	))
	assert.Equal(t, "a · (b ∧ c) · d", tree.String())
}

// S3: b and c alternate per trace, giving an exclusive choice.
func TestDiscover_Exclusive(t *testing.T) {
	tree := discover(t, mkLog(
		[]string{"a", "b", "d"},
		[]string{"a", "c", "d"},
	))
	assert.Equal(t, "a · (b × c) · d", tree.String())
}

// S4: a repeating segment with f between repetitions. The exact partition
// below follows from the fixed cut priority (the sequence cut fires before
// any loop is considered); leaf coverage is the binding property.
func TestDiscover_LoopWithRedo(t *testing.T) {
	log := mkLog([]string{"a", "b", "c", "d", "e", "f", "b", "c", "d", "e", "h"})
	tree := discover(t, log)

	assert.Equal(t, "a · ⟲(⟲(b, c, d, e), f) · h", tree.String())
	assertLeafCoverage(t, log, tree)
}

// S5: the full mix: choice between a parallel pair and a loop, then a
// three-way parallel block.
func TestDiscover_Mixed(t *testing.T) {
	log := mkLog(
		[]string{"a", "b", "c", "f", "g", "h", "i"},
		[]string{"a", "b", "c", "g", "h", "f", "i"},
		[]string{"a", "b", "c", "h", "f", "g", "i"},
		[]string{"a", "c", "b", "f", "g", "h", "i"},
		[]string{"a", "c", "b", "g", "h", "f", "i"},
		[]string{"a", "c", "b", "h", "f", "g", "i"},
		[]string{"a", "d", "f", "g", "h", "i"},
		[]string{"a", "d", "e", "d", "g", "h", "f", "i"},
		[]string{"a", "d", "e", "d", "e", "d", "h", "f", "g", "i"},
	)
	tree := discover(t, log)

	assert.Equal(t, "a · ((b ∧ c) × ⟲(d, e)) · (f ∧ g ∧ h) · i", tree.String())
	assertLeafCoverage(t, log, tree)
}

// A log with no structure at all bottoms out in the flower loop.
func TestDiscover_Flower(t *testing.T) {
	log := mkLog(
		[]string{"a", "b", "c", "a"},
		[]string{"b", "a", "c", "b"},
		[]string{"c", "b", "a", "c"},
	)
	tree := discover(t, log)

	require.Equal(t, ptree.OpLoop, tree.Op)
	assert.Equal(t, "⟲(a, b, c)", tree.String())
	assertLeafCoverage(t, log, tree)
}

func TestDiscover_Deterministic(t *testing.T) {
	log := mkLog(
		[]string{"a", "b", "c", "d"},
		[]string{"a", "c", "b", "d"},
		[]string{"a", "b", "d"},
	)

	first := discover(t, log)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.String(), discover(t, log).String())
	}
}

func TestMine_FromPrebuiltDFG(t *testing.T) {
	g, err := eventlog.Build(mkLog([]string{"a", "b"}))
	require.NoError(t, err)

	tree, err := imd.Mine(g)
	require.NoError(t, err)
	assert.Equal(t, "a · b", tree.String())
}

// assertLeafCoverage checks that the leaves of tree are exactly the
// alphabet of log, each activity once.
func assertLeafCoverage(t *testing.T, log eventlog.Log, tree *ptree.Node) {
	t.Helper()

	leaves := tree.Leaves()
	alphabet := log.Alphabet()

	sorted := func(as []eventlog.Activity) []string {
		out := make([]string, len(as))
		for i, a := range as {
			out[i] = string(a)
		}
		sort.Strings(out)

		return out
	}

	assert.Equal(t, sorted(alphabet), sorted(leaves))
}
