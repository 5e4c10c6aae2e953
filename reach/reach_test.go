package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ori-community/wotw-seedgen-sub000/graph"
	"github.com/ori-community/wotw-seedgen-sub000/inventory"
	"github.com/ori-community/wotw-seedgen-sub000/item"
	"github.com/ori-community/wotw-seedgen-sub000/player"
	"github.com/ori-community/wotw-seedgen-sub000/reach"
	"github.com/ori-community/wotw-seedgen-sub000/requirement"
	"github.com/ori-community/wotw-seedgen-sub000/settings"
)

func identifiers(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Identifier()
	}
	return out
}

func TestReachedLocationsSimpleConnection(t *testing.T) {
	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 1, Requirement: requirement.Free{}},
		}},
		graph.Pickup{Ident: "P1", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	p := player.New(inventory.New(), settings.New())
	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"P1"}, identifiers(reached))
}

func TestReachedLocationsSpawnNotFound(t *testing.T) {
	g, _ := graph.BuildGraph([]graph.Node{graph.Anchor{Ident: "Spawn"}})
	p := player.New(inventory.New(), settings.New())
	_, err := reach.ReachedLocations(g, p, "Nowhere", nil, nil)
	assert.ErrorIs(t, err, reach.ErrSpawnNotFound)
}

func TestReachedLocationsSpawnNotAnchor(t *testing.T) {
	g, _ := graph.BuildGraph([]graph.Node{graph.Pickup{Ident: "Spawn", Zone: "Z"}})
	p := player.New(inventory.New(), settings.New())
	_, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.ErrorIs(t, err, reach.ErrSpawnNotAnchor)
}

func TestStateGatedConnectionRetriesOnceStateEntered(t *testing.T) {
	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 2, Requirement: requirement.StateSet{Index: 1}},
			{Target: 1, Requirement: requirement.Free{}},
		}},
		graph.State{Ident: "ToggleA"},
		graph.Pickup{Ident: "GatedPickup", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	p := player.New(inventory.New(), settings.New())
	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"GatedPickup"}, identifiers(reached))
}

func TestAssertedStateIndexUnlocksConnectionImmediately(t *testing.T) {
	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 1, Requirement: requirement.StateSet{Index: 2}},
		}},
		graph.Pickup{Ident: "GatedPickup", Zone: "Z"},
		graph.State{Ident: "ToggleA"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	p := player.New(inventory.New(), settings.New())
	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, []int{2})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"GatedPickup"}, identifiers(reached))
}

func TestUnmetConnectionIsReportedAsProgression(t *testing.T) {
	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 1, Requirement: requirement.Impossible{}},
		}},
		graph.Pickup{Ident: "Unreachable", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	p := player.New(inventory.New(), settings.New())
	reached, progressions, err := reach.ReachedAndProgressions(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, reached)
	assert.Len(t, progressions, 1)
	_, isImpossible := progressions[0].Requirement.(requirement.Impossible)
	assert.True(t, isImpossible)
}

func TestReachedLocationsDoesNotReportProgressions(t *testing.T) {
	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 1, Requirement: requirement.Impossible{}},
		}},
		graph.Pickup{Ident: "Unreachable", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	p := player.New(inventory.New(), settings.New())
	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, reached)
}

func TestTeleporterHubReachedFromSpawnWhenNotDirectlyConnected(t *testing.T) {
	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn"},
		graph.Anchor{Ident: "Teleporters", Connections: []graph.Connection{
			{Target: 2, Requirement: requirement.Free{}},
		}},
		graph.Pickup{Ident: "ViaHub", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes, graph.WithTeleporterHub("Teleporters"))
	assert.NoError(t, err)

	p := player.New(inventory.New(), settings.New())
	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"ViaHub"}, identifiers(reached))
}

func TestCheckpointRefillRestoresHealthPastDirectDamage(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.HealthFragment(), 10)
	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Moki)))

	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 1, Requirement: requirement.Damage{Amount: 40}},
		}},
		graph.Anchor{
			Ident: "Checkpoint",
			Refills: []graph.Refill{
				{Kind: graph.RefillCheckpoint, Requirement: requirement.Free{}},
			},
			Connections: []graph.Connection{
				{Target: 2, Requirement: requirement.Damage{Amount: 35}},
			},
		},
		graph.Pickup{Ident: "PastCheckpoint", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"PastCheckpoint"}, identifiers(reached))
}

func TestCheckpointRefillInsufficientWithoutRestoreFails(t *testing.T) {
	inv := inventory.New()
	inv.Grant(item.HealthFragment(), 10)
	p := player.New(inv, settings.New(settings.WithDifficulty(settings.Moki)))

	nodes := []graph.Node{
		graph.Anchor{Ident: "Spawn", Connections: []graph.Connection{
			{Target: 1, Requirement: requirement.Damage{Amount: 40}},
		}},
		graph.Anchor{
			Ident: "NoCheckpoint",
			Connections: []graph.Connection{
				{Target: 2, Requirement: requirement.Damage{Amount: 35}},
			},
		},
		graph.Pickup{Ident: "PastCheckpoint", Zone: "Z"},
	}
	g, err := graph.BuildGraph(nodes)
	assert.NoError(t, err)

	reached, err := reach.ReachedLocations(g, p, "Spawn", nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, reached)
}
