// Package procmine discovers process trees from event logs with the
// Inductive Miner — Directly-Follows (IMD) algorithm.
//
// 🚀 What is procmine?
//
//	A small, deterministic process-discovery library:
//
//	  • Feed it an event log — a collection of traces over an activity
//	    alphabet — and get back a process tree over xor, seq, par, loop.
//	  • Every step is a pure function over an immutable directly-follows
//	    graph; equal logs always yield equal trees.
//
// ✨ Why procmine?
//
//   - Deterministic        — canonical first-occurrence order everywhere
//   - Transparent          — four cut finders, fixed priority, no search
//   - Pure Go core         — the library packages depend only on each other
//
// The work is organized across five packages:
//
//	eventlog/  — Activity, Trace, Log, the DFG builder, and a text parser
//	reach/     — the DFS reachability kernel every cut is built from
//	cuts/      — exclusive, sequence, parallel, and loop cut finders
//	ptree/     — the process-tree result type and its renderings
//	imd/       — the recursive driver: Discover(log) → tree
//
// Quick linear-notation example:
//
//	log  = { ⟨a,b,c,d⟩, ⟨a,c,b,d⟩ }
//	tree = a · (b ∧ c) · d
//
// The procmine command (cmd/procmine) wraps imd.Discover for the shell:
// it reads one trace per line and prints the tree in linear or JSON form.
//
//	go get github.com/procmine/procmine
package procmine
