package cuts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procmine/procmine/cuts"
	"github.com/procmine/procmine/eventlog"
)

func TestLoop_BodyAndRedo(t *testing.T) {
	// b,c,d,e repeat with f between the repetitions: body b..e, redo f.
	g := dfg(t, []string{"a", "b", "c", "d", "e", "f", "b", "c", "d", "e", "h"})

	parts, ok := cuts.Loop(g, acts("b", "c", "d", "e", "f"))
	assert.True(t, ok)
	assert.Equal(t, [][]eventlog.Activity{
		acts("b", "c", "d", "e"),
		acts("f"),
	}, parts)
}

func TestLoop_BodyEqualToClusterFails(t *testing.T) {
	// Once f is gone the whole cluster is one body and nothing redoes.
	g := dfg(t, []string{"a", "b", "c", "d", "e", "f", "b", "c", "d", "e", "h"})

	parts, ok := cuts.Loop(g, acts("b", "c", "d", "e"))
	assert.False(t, ok)
	assert.Nil(t, parts)
}

func TestLoop_SelfRepeatFails(t *testing.T) {
	// d ↔ e with d as both start and end: the single fragment {e} reaches
	// d through d itself, lands in the body, and the body equals the
	// cluster.
	g := dfg(t, []string{"a", "d", "e", "d", "f"})

	parts, ok := cuts.Loop(g, acts("d", "e"))
	assert.False(t, ok)
	assert.Nil(t, parts)
}

func TestLoop_NoBoundaryFails(t *testing.T) {
	// In a pure cycle every in/out set stays inside the cluster, so the
	// start and end sets come out empty and no loop structure exists.
	g := dfg(t, []string{"b", "c", "b", "c"})

	parts, ok := cuts.Loop(g, acts("b", "c"))
	assert.False(t, ok)
	assert.Nil(t, parts)
}
