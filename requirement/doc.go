// Package requirement models the logic tree that gates a connection or
// pickup: a Requirement is satisfied or not, possibly at some resource
// cost, given a Player and the set of externally-asserted world states.
//
// Two operations interpret a Requirement:
//
//   - IsMet evaluates a tree against a starting set of orb.Variants and
//     returns the Pareto-maximal residual variants after paying every
//     leaf's cost, or an empty set if the tree cannot be satisfied at
//     all from any starting variant.
//   - Solutions enumerates the minimal Inventory deltas that would make
//     IsMet non-empty, bounded by slot budgets.
//
// Grounded on world/requirement/is_met.rs and world/requirement/
// solutions.rs; the tree shape itself mirrors the teacher's habit of one
// small concrete type per case (core.Vertex/core.Edge) rather than a
// single tagged struct, so each Requirement variant is its own Go type
// implementing the Requirement interface.
package requirement
