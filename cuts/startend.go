package cuts

import "github.com/procmine/procmine/eventlog"

// Starts returns the start activities of cluster: members with no direct
// predecessor at all, or with at least one predecessor outside the cluster.
// For the top-level cluster this coincides with activities whose global
// in-set is empty.
//
// The result follows cluster order.
func Starts(g *eventlog.DFG, cluster []eventlog.Activity) []eventlog.Activity {
	member := toSet(cluster)

	var starts []eventlog.Activity
	var a eventlog.Activity
	for _, a = range cluster {
		if isBoundary(g.In(a), member) {
			starts = append(starts, a)
		}
	}

	return starts
}

// Ends returns the end activities of cluster: members with no direct
// successor, or with at least one successor outside the cluster.
//
// The result follows cluster order.
func Ends(g *eventlog.DFG, cluster []eventlog.Activity) []eventlog.Activity {
	member := toSet(cluster)

	var ends []eventlog.Activity
	var a eventlog.Activity
	for _, a = range cluster {
		if isBoundary(g.Out(a), member) {
			ends = append(ends, a)
		}
	}

	return ends
}

// isBoundary reports whether the adjacency set marks a boundary activity:
// empty, or not fully contained in the cluster.
func isBoundary(adj []eventlog.Activity, member map[eventlog.Activity]struct{}) bool {
	if len(adj) == 0 {
		return true
	}
	var x eventlog.Activity
	for _, x = range adj {
		if _, ok := member[x]; !ok {
			return true
		}
	}

	return false
}
