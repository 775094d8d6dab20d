package state

import (
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/samber/lo"
)

type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Snapshot is one inventory load with the ids that weren't in the previous load
type Snapshot struct {
	Items []networking.Pokemon
	New   IDSet
}

func (s Snapshot) IsNew(id int) bool {
	return s.New.Has(id)
}

func (s Snapshot) Find(id int) (networking.Pokemon, bool) {
	return lo.Find(s.Items, func(p networking.Pokemon) bool { return p.ID == id })
}

func (s Snapshot) IDs() IDSet {
	return NewIDSet(lo.Map(s.Items, func(p networking.Pokemon, _ int) int { return p.ID })...)
}

// InventoryTracker flags pokemon that appeared since the last load.
//
// It only knows about set difference: on the first load of a page the previous set is empty,
// so every pokemon shows up as new whether or not it was just gathered.
type InventoryTracker struct {
	previous IDSet
}

func NewInventoryTracker() InventoryTracker {
	return InventoryTracker{previous: IDSet{}}
}

func (t *InventoryTracker) Load(items []networking.Pokemon) Snapshot {
	current := NewIDSet(lo.Map(items, func(p networking.Pokemon, _ int) int { return p.ID })...)

	newIDs := IDSet{}
	for id := range current {
		if !t.previous.Has(id) {
			newIDs[id] = struct{}{}
		}
	}

	t.previous = current

	return Snapshot{Items: items, New: newIDs}
}

func (t *InventoryTracker) Reset() {
	t.previous = IDSet{}
}
