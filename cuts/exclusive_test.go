package cuts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procmine/procmine/cuts"
	"github.com/procmine/procmine/eventlog"
)

func TestExclusive_Choice(t *testing.T) {
	// After a, either b or d; b and c stay linked, d stands alone.
	g := dfg(t, []string{"a", "b", "c"}, []string{"a", "d"})

	parts, ok := cuts.Exclusive(g, acts("b", "c", "d"))
	assert.True(t, ok)
	assert.Equal(t, [][]eventlog.Activity{acts("b", "c"), acts("d")}, parts)
}

func TestExclusive_SingleComponentFails(t *testing.T) {
	g := dfg(t, []string{"a", "b", "c", "d"})

	parts, ok := cuts.Exclusive(g, g.Alphabet())
	assert.False(t, ok)
	assert.Nil(t, parts)
}

func TestExclusive_UndirectedPathCounts(t *testing.T) {
	// b → d and c → d: b and c are linked through d by undirected paths,
	// so {b, c, d} stays one component.
	g := dfg(t, []string{"a", "b", "d"}, []string{"a", "c", "d"})

	_, ok := cuts.Exclusive(g, acts("b", "c", "d"))
	assert.False(t, ok)

	// With d outside the cluster the undirected link is gone.
	parts, ok := cuts.Exclusive(g, acts("b", "c"))
	assert.True(t, ok)
	assert.Equal(t, [][]eventlog.Activity{acts("b"), acts("c")}, parts)
}

func TestExclusive_Singleton(t *testing.T) {
	g := dfg(t, []string{"a", "b"})

	_, ok := cuts.Exclusive(g, acts("a"))
	assert.False(t, ok)
}
