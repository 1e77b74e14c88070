package cuts

import (
	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/reach"
)

// Exclusive attempts the exclusive-choice cut on cluster: activities are
// grouped by the existence of an undirected directly-follows path wholly
// inside the cluster, i.e. by connected components of the symmetric DFG.
//
// Returns the component partition and true on success; a single component
// means no choice structure exists and the cut reports no progress.
func Exclusive(g *eventlog.DFG, cluster []eventlog.Activity) ([][]eventlog.Activity, bool) {
	comps := reach.Components(symmetric{g: g}, cluster)
	if len(comps) < 2 {
		return nil, false
	}

	return comps, true
}
