package eventlog

// DFG is the directly-follows graph of a log: for every activity a, the set
// of activities seen immediately before it (in) and immediately after it
// (out) in some trace. Self-loops (a directly following itself) are kept;
// the miner's base case depends on them (a lone self-looping activity is not
// a leaf).
//
// A DFG is immutable after Build. Adjacency is exposed in canonical
// first-occurrence order so that every traversal over it is deterministic.
type DFG struct {
	// order is the alphabet in canonical first-occurrence order;
	// rank maps each activity to its position in it.
	order []Activity
	rank  map[Activity]int

	// in and out hold direct predecessors and successors, canonically
	// ordered; inSet and outSet back them for O(1) membership tests.
	in  map[Activity][]Activity
	out map[Activity][]Activity

	inSet  map[Activity]map[Activity]struct{}
	outSet map[Activity]map[Activity]struct{}
}

// Build sweeps the log once and returns its directly-follows graph.
// For every adjacent pair (x, y) of every trace it records y in out(x) and
// x in in(y); sets deduplicate.
//
// Returns ErrEmptyLog when the log has no traces (or, equivalently, an empty
// alphabet) and ErrEmptyTrace when any trace has length zero.
//
// Complexity: O(total log length).
func Build(log Log) (*DFG, error) {
	// 1. Validate: a log without traces has nothing to mine.
	if len(log) == 0 {
		return nil, ErrEmptyLog
	}

	g := &DFG{
		rank:   make(map[Activity]int),
		inSet:  make(map[Activity]map[Activity]struct{}),
		outSet: make(map[Activity]map[Activity]struct{}),
	}

	// 2. Sweep every trace, accumulating alphabet and adjacency sets.
	var t Trace
	var i int
	for _, t = range log {
		if len(t) == 0 {
			return nil, ErrEmptyTrace
		}
		for i = range t {
			g.addActivity(t[i])
			if i > 0 {
				g.addEdge(t[i-1], t[i])
			}
		}
	}

	// 3. Freeze: order every adjacency set canonically.
	g.in = make(map[Activity][]Activity, len(g.order))
	g.out = make(map[Activity][]Activity, len(g.order))
	var a Activity
	for _, a = range g.order {
		g.in[a] = g.ordered(g.inSet[a])
		g.out[a] = g.ordered(g.outSet[a])
	}

	return g, nil
}

// addActivity registers a in the canonical order on first sight.
func (g *DFG) addActivity(a Activity) {
	if _, ok := g.rank[a]; ok {
		return
	}
	g.rank[a] = len(g.order)
	g.order = append(g.order, a)
	g.inSet[a] = make(map[Activity]struct{})
	g.outSet[a] = make(map[Activity]struct{})
}

// addEdge records the directly-follows pair x → y.
func (g *DFG) addEdge(x, y Activity) {
	g.outSet[x][y] = struct{}{}
	g.inSet[y][x] = struct{}{}
}

// ordered lists the members of set following the canonical activity order.
func (g *DFG) ordered(set map[Activity]struct{}) []Activity {
	if len(set) == 0 {
		return nil
	}
	out := make([]Activity, 0, len(set))
	var a Activity
	for _, a = range g.order {
		if _, ok := set[a]; ok {
			out = append(out, a)
		}
	}

	return out
}

// Alphabet returns the activities of the log in canonical order.
// The returned slice is a copy; callers may reorder it freely.
func (g *DFG) Alphabet() []Activity {
	out := make([]Activity, len(g.order))
	copy(out, g.order)

	return out
}

// Size reports the number of distinct activities.
func (g *DFG) Size() int { return len(g.order) }

// Rank returns the canonical position of a, and whether a belongs to the
// alphabet at all.
func (g *DFG) Rank(a Activity) (int, bool) {
	r, ok := g.rank[a]

	return r, ok
}

// In returns the direct predecessors of a in canonical order.
// The slice is shared; callers must not mutate it.
func (g *DFG) In(a Activity) []Activity { return g.in[a] }

// Out returns the direct successors of a in canonical order.
// The slice is shared; callers must not mutate it.
func (g *DFG) Out(a Activity) []Activity { return g.out[a] }

// HasEdge reports whether some trace contains x immediately followed by y.
func (g *DFG) HasEdge(x, y Activity) bool {
	_, ok := g.outSet[x][y]

	return ok
}

// Activities returns the canonical activity order; it is the relation
// universe used by the reachability kernel. The slice is shared.
func (g *DFG) Activities() []Activity { return g.order }

// Successors returns the direct successors of a; together with Activities
// this makes *DFG a reach.Relation. The slice is shared.
func (g *DFG) Successors(a Activity) []Activity { return g.out[a] }

// Canonical reorders the given activities into canonical order, dropping
// anything outside the alphabet. A fresh slice is returned.
func (g *DFG) Canonical(set []Activity) []Activity {
	member := make(map[Activity]struct{}, len(set))
	var a Activity
	for _, a = range set {
		member[a] = struct{}{}
	}

	return g.ordered(member)
}
