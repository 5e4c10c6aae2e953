package graph

import "github.com/ori-community/wotw-seedgen-sub000/requirement"

// Node is one entry of a built Graph. Anchor is a traversal hub; Pickup,
// State, and Quest are terminal or toggle nodes. Each variant is a
// distinct concrete type rather than one tagged union, following the
// same small-concrete-type preference as requirement.Requirement.
type Node interface {
	Identifier() string
	node()
}

// Position is an optional in-world coordinate, carried through for
// callers that render or log locations; nothing in this package or
// reach reads it.
type Position struct {
	X, Y float64
}

// RefillKind selects how a Refill restores orbs on a successful Anchor entry.
type RefillKind uint8

const (
	// RefillFull restores orbs to the player's max health and energy.
	RefillFull RefillKind = iota
	// RefillCheckpoint adds the player's checkpoint orbs to the current
	// variants, keeping only the Pareto-maximal ones.
	RefillCheckpoint
	// RefillHealth heals a fixed amount of health, capped at max.
	RefillHealth
	// RefillEnergy recharges a fixed amount of energy, capped at max.
	RefillEnergy
)

// Refill is an effect an Anchor applies, in declaration order, on entry:
// if Requirement is met by at least one orb variant, the refill is
// applied once to the whole variant set.
type Refill struct {
	Kind        RefillKind
	Amount      float32 // meaningful for RefillHealth/RefillEnergy only
	Requirement requirement.Requirement
}

// Connection is a directed edge from its owning Anchor to Target, gated
// by Requirement. Target is a node index into the owning Graph, resolved
// and validated once by BuildGraph.
type Connection struct {
	Target      int
	Requirement requirement.Requirement
}

// Anchor is a traversal hub: entering one applies its Refills, then the
// reach engine follows its Connections.
type Anchor struct {
	Ident       string
	Position    *Position
	Refills     []Refill
	Connections []Connection
}

func (a Anchor) Identifier() string { return a.Ident }
func (Anchor) node()                {}

// Pickup is a terminal node representing an item placement.
type Pickup struct {
	Ident     string
	Zone      string
	UberState string
	Position  *Position
}

func (p Pickup) Identifier() string { return p.Ident }
func (Pickup) node()                {}

// State is a toggle node: entering it marks its graph index as asserted,
// and the reach engine retries any connection that had been deferred
// waiting on that index (requirement.StateSet references it by index,
// not by UberState).
type State struct {
	Ident     string
	UberState string
}

func (s State) Identifier() string { return s.Ident }
func (State) node()                {}

// Quest is a terminal node representing a quest completion. The reach
// engine reports it like a Pickup and also asserts its index like a
// State, retrying connections deferred on it.
type Quest struct {
	Ident     string
	Zone      string
	UberState string
	Position  *Position
}

func (q Quest) Identifier() string { return q.Ident }
func (Quest) node()                {}
