// Package item defines the possessable things a Player's Inventory can
// hold — skills, shards, teleporters, counted resources, and spirit
// light — together with the constant tables (damage, energy cost, burn
// damage, damage-per-energy ordering) the player and requirement packages
// use to price a Skill's use.
//
// Item is a small comparable struct rather than a tagged enum: Go has no
// sum types, so (like core.Vertex/core.Edge in the graph package this
// module was adapted from) each kind of item is a plain struct field,
// and Item itself stays comparable so it can key an Inventory map
// directly.
package item
