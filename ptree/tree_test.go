package ptree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/ptree"
)

func TestOperator_String(t *testing.T) {
	assert.Equal(t, "leaf", ptree.OpLeaf.String())
	assert.Equal(t, "xor", ptree.OpXor.String())
	assert.Equal(t, "seq", ptree.OpSeq.String())
	assert.Equal(t, "par", ptree.OpPar.String())
	assert.Equal(t, "loop", ptree.OpLoop.String())
}

func TestString_Leaf(t *testing.T) {
	assert.Equal(t, "a", ptree.Leaf("a").String())
}

func TestString_FlatSequence(t *testing.T) {
	n := ptree.Seq(ptree.Leaf("a"), ptree.Leaf("b"), ptree.Leaf("c"))
	assert.Equal(t, "a · b · c", n.String())
}

func TestString_NestedOperators(t *testing.T) {
	n := ptree.Seq(
		ptree.Leaf("a"),
		ptree.Xor(
			ptree.Par(ptree.Leaf("b"), ptree.Leaf("c")),
			ptree.Leaf("d"),
		),
		ptree.Leaf("e"),
	)
	assert.Equal(t, "a · ((b ∧ c) × d) · e", n.String())
}

func TestString_Loop(t *testing.T) {
	body := ptree.Seq(ptree.Leaf("b"), ptree.Leaf("c"))
	assert.Equal(t, "⟲(b · c)", ptree.Loop(body).String())
	assert.Equal(t, "⟲(b · c, f)", ptree.Loop(body, ptree.Leaf("f")).String())
}

func TestString_FlowerLoop(t *testing.T) {
	n := ptree.Loop(ptree.Leaf("a"), ptree.Leaf("b"), ptree.Leaf("c"))
	assert.Equal(t, "⟲(a, b, c)", n.String())
}

func TestLeaves_LeftToRight(t *testing.T) {
	n := ptree.Seq(
		ptree.Leaf("a"),
		ptree.Par(ptree.Leaf("b"), ptree.Leaf("c")),
		ptree.Loop(ptree.Leaf("d"), ptree.Leaf("e")),
	)
	assert.Equal(t,
		[]eventlog.Activity{"a", "b", "c", "d", "e"},
		n.Leaves())
}

func TestMarshalJSON(t *testing.T) {
	n := ptree.Seq(
		ptree.Leaf("a"),
		ptree.Xor(ptree.Leaf("b"), ptree.Leaf("c")),
	)

	raw, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"op":"seq","children":[
			{"leaf":"a"},
			{"op":"xor","children":[{"leaf":"b"},{"leaf":"c"}]}
		]}`,
		string(raw))
}
