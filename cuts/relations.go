package cuts

import (
	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/reach"
)

// symmetric is the undirected view of a DFG: the successors of a are
// out(a) ∪ in(a). Used by the exclusive cut, whose equivalence is "an
// undirected path exists inside the cluster".
type symmetric struct {
	g *eventlog.DFG
}

// Activities returns the full alphabet in canonical order.
func (s symmetric) Activities() []eventlog.Activity { return s.g.Activities() }

// Successors merges out(a) and in(a), keeping canonical order.
func (s symmetric) Successors(a eventlog.Activity) []eventlog.Activity {
	return mergeCanonical(s.g, s.g.Out(a), s.g.In(a))
}

// mergeCanonical merges two canonically ordered slices into one, dropping
// duplicates. Both inputs stay untouched.
func mergeCanonical(g *eventlog.DFG, xs, ys []eventlog.Activity) []eventlog.Activity {
	if len(ys) == 0 {
		return xs
	}
	if len(xs) == 0 {
		return ys
	}

	out := make([]eventlog.Activity, 0, len(xs)+len(ys))
	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		ri, _ := g.Rank(xs[i])
		rj, _ := g.Rank(ys[j])
		switch {
		case ri < rj:
			out = append(out, xs[i])
			i++
		case rj < ri:
			out = append(out, ys[j])
			j++
		default:
			out = append(out, xs[i])
			i++
			j++
		}
	}
	out = append(out, xs[i:]...)
	out = append(out, ys[j:]...)

	return out
}

// adjacency is a materialized undirected relation over a fixed universe.
// The complement and the loop-auxiliary graph are built into this shape per
// cut attempt and discarded afterwards.
type adjacency struct {
	universe []eventlog.Activity
	adj      map[eventlog.Activity][]eventlog.Activity
}

// Activities returns the universe the relation was built over.
func (r *adjacency) Activities() []eventlog.Activity { return r.universe }

// Successors returns the neighbors of a, canonically ordered by
// construction.
func (r *adjacency) Successors(a eventlog.Activity) []eventlog.Activity { return r.adj[a] }

// link records the undirected pair {a, b}.
func (r *adjacency) link(a, b eventlog.Activity) {
	r.adj[a] = append(r.adj[a], b)
	r.adj[b] = append(r.adj[b], a)
}

// newComplement builds the negated DFG over cluster: an unordered pair is
// connected iff the DFG has no edge between its members in either
// direction. Pairs with a mutual edge (parallelism candidates) therefore
// stay disconnected, as do pairs with a single one-way edge.
func newComplement(g *eventlog.DFG, cluster []eventlog.Activity) reach.Relation {
	r := &adjacency{
		universe: cluster,
		adj:      make(map[eventlog.Activity][]eventlog.Activity, len(cluster)),
	}

	var i, j int
	var a, b eventlog.Activity
	for i, a = range cluster {
		for j = i + 1; j < len(cluster); j++ {
			b = cluster[j]
			if g.HasEdge(a, b) || g.HasEdge(b, a) {
				continue
			}
			r.link(a, b)
		}
	}

	return r
}

// newLoopAux builds the auxiliary graph of the loop cut: the DFG restricted
// to cluster, with every edge touching boundary (the start/end activities)
// deleted, taken undirected. Its universe is the cluster minus the
// boundary; components over it are the candidate loop fragments.
func newLoopAux(g *eventlog.DFG, cluster, boundary []eventlog.Activity) (reach.Relation, []eventlog.Activity) {
	skip := toSet(boundary)

	inner := make([]eventlog.Activity, 0, len(cluster))
	member := make(map[eventlog.Activity]struct{}, len(cluster))
	var a eventlog.Activity
	for _, a = range cluster {
		if _, ok := skip[a]; ok {
			continue
		}
		inner = append(inner, a)
		member[a] = struct{}{}
	}

	r := &adjacency{
		universe: inner,
		adj:      make(map[eventlog.Activity][]eventlog.Activity, len(inner)),
	}
	var b eventlog.Activity
	for _, a = range inner {
		for _, b = range g.Out(a) {
			if _, ok := member[b]; !ok {
				continue // endpoint outside, or on the boundary
			}
			if a == b {
				continue // a self-loop adds nothing to connectivity
			}
			r.adj[a] = append(r.adj[a], b)
			r.adj[b] = append(r.adj[b], a)
		}
	}

	return r, inner
}

// toSet indexes a small activity slice.
func toSet(as []eventlog.Activity) map[eventlog.Activity]struct{} {
	set := make(map[eventlog.Activity]struct{}, len(as))
	var a eventlog.Activity
	for _, a = range as {
		set[a] = struct{}{}
	}

	return set
}

// intersects reports whether any member of as belongs to set.
func intersects(as []eventlog.Activity, set map[eventlog.Activity]struct{}) bool {
	var a eventlog.Activity
	for _, a = range as {
		if _, ok := set[a]; ok {
			return true
		}
	}

	return false
}
