package graph

import (
	"errors"
	"fmt"

	"github.com/ori-community/wotw-seedgen-sub000/requirement"
)

// Sentinel errors for graph construction. Use errors.Is against these;
// the wrapped message carries the offending identifier/index.
var (
	// ErrDuplicateIdentifier indicates two nodes share an identifier.
	ErrDuplicateIdentifier = errors.New("graph: duplicate identifier")

	// ErrUnknownConnectionTarget indicates a connection's target index is
	// outside the node list, or a State reference names an index that is
	// not a State or Quest node.
	ErrUnknownConnectionTarget = errors.New("graph: unknown connection target")

	// ErrUnknownZone indicates a Pickup or Quest names a zone outside the
	// set BuildGraph was told to validate against.
	ErrUnknownZone = errors.New("graph: unknown zone")

	// ErrUnknownTeleporterHub indicates WithTeleporterHub named an
	// identifier that does not resolve to an Anchor in the built graph.
	ErrUnknownTeleporterHub = errors.New("graph: unknown teleporter hub")
)

// Option configures BuildGraph.
type Option func(*buildConfig)

type buildConfig struct {
	knownZones    map[string]struct{}
	teleporterHub string
}

// WithKnownZones restricts Pickup/Quest zones to the given set; a zone
// outside it is reported as ErrUnknownZone. If never supplied, zones are
// not validated — the caller's parser is assumed to already own that
// vocabulary.
func WithKnownZones(zones ...string) Option {
	return func(c *buildConfig) {
		c.knownZones = make(map[string]struct{}, len(zones))
		for _, z := range zones {
			c.knownZones[z] = struct{}{}
		}
	}
}

// WithTeleporterHub names the Anchor the reach engine should also enter
// from spawn when it is not directly connected, modeling the game's
// teleporter network being reachable from anywhere once unlocked.
func WithTeleporterHub(identifier string) Option {
	return func(c *buildConfig) { c.teleporterHub = identifier }
}

// Graph is an ordered, validated, read-only node list. Build it with
// BuildGraph; a zero Graph is not usable.
type Graph struct {
	nodes         []Node
	index         map[string]int
	teleporterHub int // -1 if none configured
}

// BuildGraph validates nodes and returns the Graph wrapping them.
// Connection and State-reference indices are checked against the node
// list; identifiers must be unique within it. The node slice is copied,
// so later changes to the caller's slice do not affect the Graph; the
// nodes' own Refills and Connections slices are shared, not copied.
func BuildGraph(nodes []Node, opts ...Option) (*Graph, error) {
	cfg := buildConfig{teleporterHub: ""}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes:         append([]Node(nil), nodes...),
		index:         make(map[string]int, len(nodes)),
		teleporterHub: -1,
	}

	for i, n := range g.nodes {
		id := n.Identifier()
		if _, dup := g.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, id)
		}
		g.index[id] = i
	}

	if cfg.knownZones != nil {
		for _, n := range g.nodes {
			var zone string
			switch t := n.(type) {
			case Pickup:
				zone = t.Zone
			case Quest:
				zone = t.Zone
			default:
				continue
			}
			if _, ok := cfg.knownZones[zone]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
			}
		}
	}

	for _, n := range g.nodes {
		anchor, ok := n.(Anchor)
		if !ok {
			continue
		}
		for _, c := range anchor.Connections {
			if c.Target < 0 || c.Target >= len(g.nodes) {
				return nil, fmt.Errorf("%w: %q -> index %d", ErrUnknownConnectionTarget, anchor.Ident, c.Target)
			}
			if err := g.checkStateIndices(anchor.Ident, c.Requirement); err != nil {
				return nil, err
			}
		}
		for _, r := range anchor.Refills {
			if err := g.checkStateIndices(anchor.Ident, r.Requirement); err != nil {
				return nil, err
			}
		}
	}

	if cfg.teleporterHub != "" {
		idx, ok := g.index[cfg.teleporterHub]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTeleporterHub, cfg.teleporterHub)
		}
		if _, ok := g.nodes[idx].(Anchor); !ok {
			return nil, fmt.Errorf("%w: %q is not an anchor", ErrUnknownTeleporterHub, cfg.teleporterHub)
		}
		g.teleporterHub = idx
	}

	return g, nil
}

// checkStateIndices validates every StateSet leaf reachable inside req
// against g.nodes: the index must be in range and name a State or Quest
// node, matching the same ErrUnknownConnectionTarget class of failure a
// bad connection target produces.
func (g *Graph) checkStateIndices(owner string, req requirement.Requirement) error {
	for _, idx := range requirement.ContainedStates(req) {
		if idx < 0 || idx >= len(g.nodes) {
			return fmt.Errorf("%w: %q references unknown state index %d", ErrUnknownConnectionTarget, owner, idx)
		}
		switch g.nodes[idx].(type) {
		case State, Quest:
		default:
			return fmt.Errorf("%w: %q references index %d, which is not a state", ErrUnknownConnectionTarget, owner, idx)
		}
	}
	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node at i. Panics if i is out of range, matching the
// slice semantics a built, validated Graph relies on internally.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// Index resolves an identifier to its node index.
func (g *Graph) Index(identifier string) (int, bool) {
	i, ok := g.index[identifier]
	return i, ok
}

// TeleporterHub returns the configured teleporter-hub node index, if any.
func (g *Graph) TeleporterHub() (int, bool) {
	if g.teleporterHub < 0 {
		return 0, false
	}
	return g.teleporterHub, true
}
