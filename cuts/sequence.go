package cuts

import (
	"github.com/procmine/procmine/eventlog"
	"github.com/procmine/procmine/reach"
)

// Sequence attempts the sequential cut on cluster in two phases:
//
//  1. Partition the cluster into strongly connected components of the
//     directly-follows relation; each component is a provisional block.
//  2. Left-fold merge: starting from the first block, absorb every later
//     block that is mutually unreachable from it, then continue with the
//     next surviving block.
//
// The surviving blocks, ordered by the cluster position of their first
// member, are the children of a sequence node. Fewer than two blocks means
// no sequential structure and the cut reports no progress.
func Sequence(g *eventlog.DFG, cluster []eventlog.Activity) ([][]eventlog.Activity, bool) {
	// 1. Strongly connected components, grouped by representative.
	blocks := sccBlocks(g, cluster)

	// 2. Merge mutually unreachable blocks, left to right.
	var i, j int
	for i = 0; i < len(blocks); i++ {
		for j = i + 1; j < len(blocks); {
			if reach.NotConnected(g, blocks[i], blocks[j]) {
				blocks[i] = append(blocks[i], blocks[j]...)
				blocks = append(blocks[:j], blocks[j+1:]...)
			} else {
				j++
			}
		}
	}

	if len(blocks) < 2 {
		return nil, false
	}

	return blocks, true
}

// sccBlocks partitions cluster into strongly connected components, testing
// each unassigned activity against the representative of its candidate
// block. Blocks appear in cluster order of their representatives.
func sccBlocks(g *eventlog.DFG, cluster []eventlog.Activity) [][]eventlog.Activity {
	assigned := make(map[eventlog.Activity]struct{}, len(cluster))
	var blocks [][]eventlog.Activity

	var i, j int
	var a, b eventlog.Activity
	for i, a = range cluster {
		if _, ok := assigned[a]; ok {
			continue
		}
		assigned[a] = struct{}{}
		block := []eventlog.Activity{a}

		for j = i + 1; j < len(cluster); j++ {
			b = cluster[j]
			if _, ok := assigned[b]; ok {
				continue
			}
			if reach.StronglyConnected(g, a, b) {
				assigned[b] = struct{}{}
				block = append(block, b)
			}
		}
		blocks = append(blocks, block)
	}

	return blocks
}
