// Package reach implements the forward-closure traversal that, given a
// built graph.Graph, a player, and a spawn anchor, computes every
// pickup/quest node reachable under the player's current inventory and
// the asserted world states.
//
// The traversal is depth-first from spawn: entering an Anchor applies
// its Refills in order, then follows each Connection whose requirement
// is met by the current orb variants. An unmet connection whose
// requirement references a not-yet-known State is deferred and retried
// the moment that state is entered, rather than re-walked by repeated fixed-point passes. Every
// node is entered at most once per call — the memoized orbs recorded on
// first entry are never revisited, matching the upstream reach engine
// this package is grounded on.
//
// Errors:
//
//	ErrSpawnNotFound  - the named spawn does not resolve to any node.
//	ErrSpawnNotAnchor - the named spawn resolves to a non-Anchor node.
package reach
