package state

import (
	"context"
	"errors"
	"testing"

	"github.com/nathanieltooley/pokedex/networking"
	networkingmock "github.com/nathanieltooley/pokedex/networking/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDraft(ids ...int) *DeckDraft {
	tracker := NewInventoryTracker()
	return NewDeckDraft(tracker.Load(pokemonWithIDs(ids...)))
}

func TestDraftNeverExceedsMax(t *testing.T) {
	draft := newDraft(1, 2, 3, 4, 5, 6, 7)

	for id := 1; id <= 5; id++ {
		require.NoError(t, draft.Toggle(id))
	}

	err := draft.Toggle(6)
	assert.ErrorIs(t, err, ErrDeckFull)
	assert.Equal(t, "You can select up to 5 Pokémon.", err.Error())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, draft.Selected)

	// Removing still works when full
	require.NoError(t, draft.Toggle(3))
	require.NoError(t, draft.Toggle(6))
	assert.Equal(t, []int{1, 2, 4, 5, 6}, draft.Selected)
}

func TestDraftToggleTwiceRestores(t *testing.T) {
	draft := newDraft(1, 2, 3)
	require.NoError(t, draft.Toggle(3))
	require.NoError(t, draft.Toggle(1))

	before := append([]int(nil), draft.Selected...)

	require.NoError(t, draft.Toggle(2))
	require.NoError(t, draft.Toggle(2))

	assert.Equal(t, before, draft.Selected)
}

func TestDraftUnknownPokemon(t *testing.T) {
	draft := newDraft(1)
	assert.ErrorIs(t, draft.Toggle(99), ErrUnknownPokemon)
	assert.Empty(t, draft.Selected)
}

func TestDraftSlots(t *testing.T) {
	draft := newDraft(1, 2, 3)
	require.NoError(t, draft.Toggle(3))
	require.NoError(t, draft.Toggle(1))

	slots := draft.Slots()
	require.Len(t, slots, MaxDeckSize)
	assert.Equal(t, 3, slots[0].ID)
	assert.Equal(t, 1, slots[1].ID)
	assert.Nil(t, slots[2])
	assert.Nil(t, slots[4])
}

func TestDraftValidationSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)
	api.EXPECT().CreateDeck(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	draft := newDraft(1, 2)
	require.NoError(t, draft.Toggle(1))
	draft.Name = "   "

	err := draft.Submit(context.Background(), api, 1)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.True(t, IsValidation(err))

	draft.Name = "Team Fire"
	draft.Selected = nil
	err = draft.Submit(context.Background(), api, 1)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, "Please select at least one Pokémon.", err.Error())
}

func TestDraftSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	api.EXPECT().
		CreateDeck(gomock.Any(), 7, networking.NewDeck{Name: "Team Fire", PokemonIDs: []int{2, 1}}).
		Return(nil)

	draft := newDraft(1, 2)
	draft.Name = "  Team Fire "
	require.NoError(t, draft.Toggle(2))
	require.NoError(t, draft.Toggle(1))

	require.NoError(t, draft.Submit(context.Background(), api, 7))
	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Selected)
}

func TestDraftSubmitFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	serverErr := &networking.HTTPError{Op: "create deck", Status: 400, Message: "pokemon 9 does not belong to character 7"}
	api.EXPECT().CreateDeck(gomock.Any(), 7, gomock.Any()).Return(serverErr)

	draft := newDraft(1)
	draft.Name = "Team Fire"
	require.NoError(t, draft.Toggle(1))

	err := draft.Submit(context.Background(), api, 7)
	require.Error(t, err)
	assert.Equal(t, "pokemon 9 does not belong to character 7", err.Error())
	assert.False(t, IsValidation(err))

	var httpErr *networking.HTTPError
	assert.True(t, errors.As(err, &httpErr))

	assert.Equal(t, "Team Fire", draft.Name)
	assert.Equal(t, []int{1}, draft.Selected)
}

func TestDraftClone(t *testing.T) {
	draft := newDraft(1, 2)
	draft.Name = "Team"
	require.NoError(t, draft.Toggle(1))

	clone := draft.Clone()
	require.NoError(t, clone.Toggle(2))

	assert.Equal(t, []int{1}, draft.Selected)
	assert.Equal(t, []int{1, 2}, clone.Selected)
	assert.Equal(t, "Team", clone.Name)
}
