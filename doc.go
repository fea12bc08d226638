// Package layout is a constraint-based box-layout engine in the spirit of
// CSS flexbox.
//
// Callers attach a [Style] to each node of a tree held in a storage
// back-end (see the arena and world packages, or any [Tree]
// implementation) and call [Compute] with the outer available space. The
// engine writes a [Layout] — a size plus an offset relative to the parent
// — for every node.
//
// Sizing follows a three-tier constraint model per axis (minimum,
// suggested, maximum, with the minimum dominating on conflict), resolves
// percentages against possibly-indefinite references via [Maybe], probes
// intrinsic content through caller-supplied measure functions, and
// memoizes per-node results so that repeated passes over a clean tree are
// cheap.
package layout
