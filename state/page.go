package state

import (
	"fmt"
	"time"

	"github.com/nathanieltooley/pokedex/networking"
)

// Load is where a section of a screen is in its fetch
type Load int

const (
	LoadPending Load = iota
	LoadReady
	LoadFailed
)

// CharacterPage is all the mutable state behind a character's screen.
// Build it with NewCharacterPage and call Teardown when leaving the screen.
type CharacterPage struct {
	CharacterID int
	Character   *networking.Character

	Inventory     Snapshot
	InventoryLoad Load
	Tracker       InventoryTracker

	Decks     []networking.DeckDetail
	DecksLoad Load

	Cooldown       Cooldown
	CooldownWindow time.Duration
	// Set while a gather request is in flight
	Gathering bool

	// nil unless the deck modal is open
	Draft *DeckDraft

	Status string
}

func NewCharacterPage(characterID int, cooldownWindow time.Duration) *CharacterPage {
	page := &CharacterPage{
		CharacterID:    characterID,
		CooldownWindow: cooldownWindow,
	}
	page.Reset()

	return page
}

// Puts the page back how it was when first built
func (p *CharacterPage) Reset() {
	p.Cooldown.Stop()

	p.Character = nil
	p.Inventory = Snapshot{New: IDSet{}}
	p.InventoryLoad = LoadPending
	p.Tracker = NewInventoryTracker()
	p.Decks = nil
	p.DecksLoad = LoadPending
	p.Cooldown = NewCooldownWithClock(p.Cooldown.now)
	p.Gathering = false
	p.Draft = nil
	p.Status = ""
}

func (p *CharacterPage) Teardown() {
	p.Cooldown.Stop()
	p.Draft = nil
}

func (p *CharacterPage) Title() string {
	if p.Character != nil {
		return fmt.Sprintf("%s's page", p.Character.FullName())
	}

	return fmt.Sprintf("Character #%d", p.CharacterID)
}

func (p *CharacterPage) GatherEnabled() bool {
	return !p.Gathering && p.Cooldown.Available()
}

func (p *CharacterPage) GatherLabel() string {
	return p.Cooldown.Label()
}

// Opens a fresh draft over the current inventory
func (p *CharacterPage) OpenDraft() error {
	if len(p.Inventory.Items) == 0 {
		return ErrNoPokemonForDeck
	}

	p.Draft = NewDeckDraft(p.Inventory)
	return nil
}

func (p *CharacterPage) CloseDraft() {
	p.Draft = nil
}

// Applies a freshly loaded inventory
func (p *CharacterPage) LoadInventory(items []networking.Pokemon) {
	p.Inventory = p.Tracker.Load(items)
	p.InventoryLoad = LoadReady
}
