/*
Package splay provides a generic, intrusive splay tree engine.

The package is intentionally not a container. It does not allocate nodes and
it does not own them. Clients bring their own node type, which embeds one
`Links` record per tree the node takes part in, and select the linkage record
and ordering value through a `Descriptor`. This lets a single node be a member
of more than one tree at the same time, each tree ordered by a different value.

Engine operations:
  - single rotations and splay-to-root (zig, zig-zig, zig-zag),
  - find with splaying of the exact match or the nearest visited node,
  - split around a key and merge of two ordered trees,
  - insert of a client-allocated node and removal of the root,
  - lower and upper bound queries,
  - in-order successor/predecessor, minimum and maximum,
  - a structural invariant checker (`Check`).

All operations are iterative. Trees degenerate to lists under sorted insertion
before the first splays rebalance them, so recursion depth is not bounded by
log n.

The engine is not safe for concurrent use. Every lookup restructures the tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package splay

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
