// Package player derives the numbers a requirement evaluation needs from
// an Inventory and Settings: max health/energy, defense/energy/damage
// modifiers, skill use costs, and weapon preference.
//
// These are pure derivations recomputed from inventory + settings on
// every call rather than cached on a mutable Player, matching the
// teacher's preference for small value types over stateful objects
// threaded through a call; the original player.rs this package is
// grounded on does cache some of these per-frame in the game client, but
// nothing in this module's scope runs per-frame.
package player
