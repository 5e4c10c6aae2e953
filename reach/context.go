package reach

import (
	"log"

	"github.com/ori-community/wotw-seedgen-sub000/graph"
	"github.com/ori-community/wotw-seedgen-sub000/orbs"
	"github.com/ori-community/wotw-seedgen-sub000/player"
	"github.com/ori-community/wotw-seedgen-sub000/requirement"
)

// Progression pairs an unmet connection requirement with the orb
// variants available when it was attempted, for the seed generator to
// use as an "this would help" hint.
type Progression struct {
	Requirement requirement.Requirement
	Orbs        orbs.Variants
}

// Logger receives observational warnings that reach chooses not to fail
// the call over; today the only one is a state-deferred connection whose
// target was never reached. The default logger writes through the standard library's log
// package; pass a no-op to silence it.
type Logger func(format string, args ...interface{})

// Option configures a reach call.
type Option func(*config)

type config struct {
	logger Logger
}

func defaultConfig() config {
	return config{logger: func(format string, args ...interface{}) { log.Printf(format, args...) }}
}

// WithLogger overrides the warning sink.
func WithLogger(fn Logger) Option {
	return func(c *config) {
		if fn != nil {
			c.logger = fn
		}
	}
}

type pendingConnection struct {
	from int
	conn graph.Connection
}

// reachContext is the mutable scratch state threaded through one
// traversal call. It is never shared across calls.
type reachContext struct {
	graph             *graph.Graph
	player            player.Player
	progressionCheck  bool
	logger            Logger
	states            map[int]bool
	stateProgressions map[int][]pendingConnection
	worldState        map[int]orbs.Variants
	reached           []graph.Node
	progressions      []Progression
}

func newReachContext(g *graph.Graph, p player.Player, progressionCheck bool, logger Logger, states map[int]bool) *reachContext {
	return &reachContext{
		graph:             g,
		player:            p,
		progressionCheck:  progressionCheck,
		logger:            logger,
		states:            states,
		stateProgressions: make(map[int][]pendingConnection),
		worldState:        make(map[int]orbs.Variants),
	}
}
