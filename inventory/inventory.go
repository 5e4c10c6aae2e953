package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ori-community/wotw-seedgen-sub000/item"
)

// SpiritLightStack is how many spirit light points fill one placement
// slot when counting items for slot-limit accounting.
const SpiritLightStack = 40

// Inventory counts how many of each item.Item are held. The zero value
// is an empty inventory, ready to use.
type Inventory struct {
	items map[item.Item]uint16
}

// New returns an empty Inventory.
func New() Inventory {
	return Inventory{items: make(map[item.Item]uint16)}
}

func (inv *Inventory) ensure() {
	if inv.items == nil {
		inv.items = make(map[item.Item]uint16)
	}
}

// Grant adds amount of it to the inventory. Single-instance items
// (skills, shards, teleporters, clean water) are clamped to 1 regardless
// of amount.
func (inv *Inventory) Grant(it item.Item, amount uint16) {
	inv.ensure()
	if it.IsSingleInstance() {
		inv.items[it] = 1
		return
	}
	inv.items[it] += amount
}

// Remove subtracts amount of it from the inventory, floored at zero. If
// the count reaches zero the entry is deleted so Has/Contains checks
// over the map stay accurate.
func (inv *Inventory) Remove(it item.Item, amount uint16) {
	inv.ensure()
	have := inv.items[it]
	if amount >= have {
		delete(inv.items, it)
		return
	}
	inv.items[it] = have - amount
}

// Get returns how many of it the inventory holds.
func (inv Inventory) Get(it item.Item) uint16 {
	if inv.items == nil {
		return 0
	}
	return inv.items[it]
}

// Has reports whether the inventory holds at least amount of it.
func (inv Inventory) Has(it item.Item, amount uint16) bool {
	return inv.Get(it) >= amount
}

// Contains reports whether inv holds at least as much of every item as
// other — other is a subset of inv. Used by the solver to drop a
// solution that is a strict superset of another.
func (inv Inventory) Contains(other Inventory) bool {
	for it, amount := range other.items {
		if inv.Get(it) < amount {
			return false
		}
	}
	return true
}

// Merge returns a new Inventory holding the sum of inv and other.
func (inv Inventory) Merge(other Inventory) Inventory {
	out := New()
	for it, amount := range inv.items {
		out.items[it] = amount
	}
	for it, amount := range other.items {
		out.items[it] += amount
	}
	return out
}

// Clone returns an independent copy of inv.
func (inv Inventory) Clone() Inventory {
	out := New()
	for it, amount := range inv.items {
		out.items[it] = amount
	}
	return out
}

// Each calls fn once per distinct item held, in no particular order.
func (inv Inventory) Each(fn func(it item.Item, amount uint16)) {
	for it, amount := range inv.items {
		fn(it, amount)
	}
}

// Len returns the number of distinct item kinds held (not their total
// count).
func (inv Inventory) Len() int {
	return len(inv.items)
}

// ItemCount returns how many placement slots the inventory occupies:
// spirit light is bucketed into stacks of SpiritLightStack, every other
// item counts its full amount.
func (inv Inventory) ItemCount() int {
	total := 0
	for it, amount := range inv.items {
		if it.Kind == item.KindSpiritLight {
			total += int((uint32(amount) + SpiritLightStack - 1) / SpiritLightStack)
			continue
		}
		total += int(amount)
	}
	return total
}

// WorldItemCount is ItemCount restricted to spirit light: every other
// item kind is excluded from the world_slots budget because it spreads
// into a single placement on multiworld, rather than one per unit held.
func (inv Inventory) WorldItemCount() int {
	total := 0
	for it, amount := range inv.items {
		if it.Kind == item.KindSpiritLight {
			total += int((uint32(amount) + SpiritLightStack - 1) / SpiritLightStack)
		}
	}
	return total
}

func (inv Inventory) String() string {
	type row struct {
		name   string
		amount uint16
	}
	rows := make([]row, 0, len(inv.items))
	for it, amount := range inv.items {
		rows = append(rows, row{it.String(), amount})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		if r.amount == 1 {
			b.WriteString(r.name)
		} else {
			fmt.Fprintf(&b, "%dx %s", r.amount, r.name)
		}
	}
	return b.String()
}
