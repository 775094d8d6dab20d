package character

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/state"
)

// Every result carries the id of the character it was fetched for,
// anything meant for another page gets dropped
type (
	characterLoadedMsg struct {
		characterID int
		characters  []networking.Character
		err         error
	}
	decksLoadedMsg struct {
		characterID int
		decks       []networking.DeckDetail
		err         error
	}
	inventoryLoadedMsg struct {
		characterID int
		items       []networking.Pokemon
		err         error
	}
	gatherDoneMsg struct {
		characterID int
		result      networking.GatherResult
		err         error
	}
	deckSavedMsg struct {
		characterID int
		modalToken  int
		name        string
		err         error
	}
)

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), global.Opt.RequestTimeout)
}

func loadCharacter(api networking.API, characterID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		characters, err := api.ListCharacters(ctx)
		return characterLoadedMsg{characterID: characterID, characters: characters, err: err}
	}
}

func loadDecks(api networking.API, characterID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		decks, err := api.ListDeckDetails(ctx, characterID)
		return decksLoadedMsg{characterID: characterID, decks: decks, err: err}
	}
}

func loadInventory(api networking.API, characterID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		items, err := api.ListInventory(ctx, characterID)
		return inventoryLoadedMsg{characterID: characterID, items: items, err: err}
	}
}

func gather(api networking.API, characterID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		result, err := api.Gather(ctx, characterID)
		return gatherDoneMsg{characterID: characterID, result: result, err: err}
	}
}

// Saves a copy of the draft so the one on screen isn't touched from outside the update loop
func saveDeck(api networking.API, characterID, modalToken int, draft *state.DeckDraft) tea.Cmd {
	pending := draft.Clone()
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		name := pending.TrimmedName()
		err := pending.Submit(ctx, api, characterID)
		return deckSavedMsg{characterID: characterID, modalToken: modalToken, name: name, err: err}
	}
}
