package state

import (
	"context"
	"slices"
	"strings"

	"github.com/nathanieltooley/pokedex/networking"
)

const MaxDeckSize = 5

// DeckCreator is the slice of the API a draft needs to save itself
type DeckCreator interface {
	CreateDeck(ctx context.Context, characterID int, deck networking.NewDeck) error
}

// DeckDraft is the deck being put together in the create deck modal.
// It only lives while the modal is open.
type DeckDraft struct {
	Name     string
	Selected []int

	inventory Snapshot
}

func NewDeckDraft(inventory Snapshot) *DeckDraft {
	return &DeckDraft{inventory: inventory}
}

// Adds or removes a pokemon. Selection order is kept since it decides slot order.
func (d *DeckDraft) Toggle(id int) error {
	if i := slices.Index(d.Selected, id); i != -1 {
		d.Selected = slices.Delete(d.Selected, i, i+1)
		return nil
	}

	if _, ok := d.inventory.Find(id); !ok {
		return ErrUnknownPokemon
	}

	if len(d.Selected) >= MaxDeckSize {
		return ErrDeckFull
	}

	d.Selected = append(d.Selected, id)
	return nil
}

func (d *DeckDraft) IsSelected(id int) bool {
	return slices.Contains(d.Selected, id)
}

func (d *DeckDraft) Validate() error {
	if d.TrimmedName() == "" {
		return ErrEmptyName
	}

	if len(d.Selected) == 0 {
		return ErrEmptySelection
	}

	return nil
}

// Validates then saves the deck. The draft is only cleared if the save went through,
// otherwise it's left alone so the user can try again.
func (d *DeckDraft) Submit(ctx context.Context, creator DeckCreator, characterID int) error {
	if err := d.Validate(); err != nil {
		return err
	}

	deck := networking.NewDeck{
		Name:       d.TrimmedName(),
		PokemonIDs: slices.Clone(d.Selected),
	}

	if err := creator.CreateDeck(ctx, characterID, deck); err != nil {
		return err
	}

	d.Clear()
	return nil
}

func (d *DeckDraft) TrimmedName() string {
	return strings.TrimSpace(d.Name)
}

// Copy with its own selection slice, the inventory snapshot is shared
func (d *DeckDraft) Clone() *DeckDraft {
	return &DeckDraft{
		Name:      d.Name,
		Selected:  slices.Clone(d.Selected),
		inventory: d.inventory,
	}
}

func (d *DeckDraft) Clear() {
	d.Name = ""
	d.Selected = nil
}

// Always MaxDeckSize long, unfilled slots are nil
func (d *DeckDraft) Slots() [MaxDeckSize]*networking.Pokemon {
	var slots [MaxDeckSize]*networking.Pokemon

	for i, id := range d.Selected {
		if i >= MaxDeckSize {
			break
		}

		if p, ok := d.inventory.Find(id); ok {
			slots[i] = &p
		}
	}

	return slots
}

func (d *DeckDraft) Inventory() Snapshot {
	return d.inventory
}
