package ptree

import (
	"encoding/json"
	"strings"

	"github.com/procmine/procmine/eventlog"
)

// Operator tags the shape of a Node.
type Operator uint8

const (
	// OpLeaf marks a leaf node carrying a single activity.
	OpLeaf Operator = iota
	// OpXor is exclusive choice: exactly one child executes.
	OpXor
	// OpSeq is sequence: children execute left to right.
	OpSeq
	// OpPar is concurrency: children interleave freely.
	OpPar
	// OpLoop is repetition: first child is the body, an optional second
	// child is the redo part executed between body iterations.
	OpLoop
)

// String returns the operator's conventional name.
func (op Operator) String() string {
	switch op {
	case OpXor:
		return "xor"
	case OpSeq:
		return "seq"
	case OpPar:
		return "par"
	case OpLoop:
		return "loop"
	default:
		return "leaf"
	}
}

// glyph is the infix symbol of the linear notation.
func (op Operator) glyph() string {
	switch op {
	case OpXor:
		return " × "
	case OpSeq:
		return " · "
	default: // OpPar; OpLoop renders as a prefix and never reaches here
		return " ∧ "
	}
}

// Node is one process-tree node. A leaf has Op == OpLeaf, its Activity set,
// and no children; an operator node has Op != OpLeaf and only Children.
// Nodes are immutable once built.
type Node struct {
	Op       Operator
	Activity eventlog.Activity
	Children []*Node
}

// Leaf returns a leaf node for activity a.
func Leaf(a eventlog.Activity) *Node {
	return &Node{Op: OpLeaf, Activity: a}
}

// Xor returns an exclusive-choice node over children.
func Xor(children ...*Node) *Node { return &Node{Op: OpXor, Children: children} }

// Seq returns a sequence node over children; child order is significant.
func Seq(children ...*Node) *Node { return &Node{Op: OpSeq, Children: children} }

// Par returns a concurrency node over children.
func Par(children ...*Node) *Node { return &Node{Op: OpPar, Children: children} }

// Loop returns a loop node: Loop(body) or Loop(body, redo).
func Loop(children ...*Node) *Node { return &Node{Op: OpLoop, Children: children} }

// Leaves appends the activities of the subtree in left-to-right order.
func (n *Node) Leaves() []eventlog.Activity {
	var out []eventlog.Activity
	n.walk(func(leaf *Node) {
		out = append(out, leaf.Activity)
	})

	return out
}

// walk applies fn to every leaf, left to right.
func (n *Node) walk(fn func(leaf *Node)) {
	if n.Op == OpLeaf {
		fn(n)
		return
	}
	var c *Node
	for _, c = range n.Children {
		c.walk(fn)
	}
}

// String renders the tree in linear notation: leaves print their activity,
// seq/xor/par join child renderings with their glyph, loop prints
// ⟲(body, redo). A seq/xor/par node nested under another seq/xor/par node
// is parenthesized; children of a loop are not, since the loop's own
// parentheses delimit them.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, true)

	return sb.String()
}

func (n *Node) render(sb *strings.Builder, top bool) {
	switch n.Op {
	case OpLeaf:
		sb.WriteString(string(n.Activity))
	case OpLoop:
		sb.WriteString("⟲(")
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.render(sb, true) // its own parentheses delimit the loop
		}
		sb.WriteByte(')')
	default:
		if !top {
			sb.WriteByte('(')
		}
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteString(n.Op.glyph())
			}
			c.render(sb, false)
		}
		if !top {
			sb.WriteByte(')')
		}
	}
}

// jsonNode mirrors Node for encoding; leaves collapse to {"leaf": "a"}.
type jsonNode struct {
	Op       string      `json:"op,omitempty"`
	Leaf     string      `json:"leaf,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// MarshalJSON renders the tree as nested objects:
// {"op":"seq","children":[{"leaf":"a"}, ...]}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	if n.Op == OpLeaf {
		return &jsonNode{Leaf: string(n.Activity)}
	}
	out := &jsonNode{Op: n.Op.String(), Children: make([]*jsonNode, 0, len(n.Children))}
	var c *Node
	for _, c = range n.Children {
		out.Children = append(out.Children, c.toJSON())
	}

	return out
}
