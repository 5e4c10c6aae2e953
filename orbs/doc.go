// Package orbs represents a logical player's health and energy and the
// Pareto-maximal set combinators used to fold alternative resource states
// through a requirement tree.
//
// What
//
//   - Orbs is a pair of health and energy, the two logical resources a
//     requirement can spend.
//   - Variants is a small slice of alternative Orbs a player might be in at
//     a point in the graph — for example one branch of an Or requirement
//     spent energy, another spent health, and neither dominates the other.
//   - Either computes the Pareto-maximal union of two Variants sets; Both
//     computes the Pareto-maximal Minkowski sum.
//
// Why
//
//   - Collapsing alternative resource states too early (e.g. always picking
//     "more energy left") would silently discard solutions that are better
//     along a different axis. Pareto filtering keeps every variant that
//     could still matter downstream, while discarding the ones that never
//     can.
//
// Determinism
//
//	Filtering only compares Orbs values; given the same inputs in the same
//	order, Either and Both always return the same Variants in the same
//	order.
package orbs
