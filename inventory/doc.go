// Package inventory counts how many of each item.Item a player (or a
// requirement's "needed" set) holds.
//
// What: Inventory is a map from item.Item to a count, with spirit light
// handled as a special counted resource (stacked in buckets rather than
// tracked fragment-by-fragment) and single-instance items (skills,
// shards, teleporters, clean water) clamped to at most one.
//
// Why: counts, not sets, because solutions() needs to compare "how much"
// of an item two alternatives need, not just whether they need it, and
// because Grant must be able to accumulate partial progress (energy and
// health fragments) across many small pickups.
package inventory
