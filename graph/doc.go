// Package graph defines the logic graph the reach engine walks: an
// ordered list of Node values (Anchor, Pickup, State, Quest) connected by
// Connection edges, plus the Refill effects an Anchor applies on entry.
//
// A Graph is built once, by BuildGraph, from a flat node list the caller
// (a logic-file parser, out of scope here) has already resolved —
// connection targets and state references are plain node indices, not
// names, so a built Graph never looks up an identifier again. BuildGraph
// is the only place identifiers and indices are cross-checked; after it
// returns successfully the Graph is read-only and safe to share across
// concurrent reach calls.
//
// Errors:
//
//	ErrDuplicateIdentifier     - two nodes share an identifier.
//	ErrUnknownConnectionTarget - a connection's target index is out of range,
//	                             or a StateSet leaf inside a connection's or
//	                             refill's requirement tree references an
//	                             index that is out of range or not a State/Quest node.
//	ErrUnknownZone             - a Pickup/Quest names a zone outside the known set.
//	ErrUnknownTeleporterHub    - WithTeleporterHub names an identifier BuildGraph cannot resolve to an Anchor.
package graph
