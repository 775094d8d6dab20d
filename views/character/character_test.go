package character

import (
	"errors"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	networkingmock "github.com/nathanieltooley/pokedex/networking/mock"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	global.StopLogging()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	newModel, cmd := m.Update(msg)
	page, ok := newModel.(Model)
	require.True(t, ok, "expected to stay on the character page, got %T", newModel)

	return page, cmd
}

func loadedModel(t *testing.T, api networking.API, items ...networking.Pokemon) Model {
	t.Helper()

	m := NewModel(api, 1, components.NewBreadcrumb())
	m, _ = update(t, m, inventoryLoadedMsg{characterID: 1, items: items})
	return m
}

func testPokemon(ids ...int) []networking.Pokemon {
	items := make([]networking.Pokemon, len(ids))
	for i, id := range ids {
		items[i] = networking.Pokemon{ID: id, Name: "charmander", Types: "fire", Hp: 39, Attack: 52, Defence: 43}
	}

	return items
}

func TestGatherDisablesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1)...)
	require.True(t, m.page.GatherEnabled())

	m, cmd := update(t, m, runes("g"))
	require.NotNil(t, cmd)
	assert.True(t, m.page.Gathering)
	assert.False(t, m.page.GatherEnabled())

	// A second press while the first is in flight does nothing
	_, cmd = update(t, m, runes("g"))
	assert.Nil(t, cmd)
}

func TestGatherSuccessStartsCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := loadedModel(t, api, testPokemon(1)...)
	m.page.Cooldown = state.NewCooldownWithClock(func() time.Time { return now })
	m.page.Gathering = true

	next := now.Add(59*time.Minute + 30*time.Second)
	m, cmd := update(t, m, gatherDoneMsg{characterID: 1, result: networking.GatherResult{
		Message:      "Success! 10 random Pokémon assigned to character #1",
		NextGatherAt: &next,
	}})

	assert.NotNil(t, cmd)
	assert.False(t, m.page.Gathering)
	assert.False(t, m.page.GatherEnabled())
	assert.Equal(t, "Gather in 59:30", m.page.GatherLabel())
	assert.Equal(t, "Success! 10 random Pokémon assigned to character #1", m.page.Status)
	assert.Contains(t, m.View(), "Gather in 59:30")
}

func TestRejectedGatherKeepsCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1)...)
	m.page.Gathering = true

	rejected := &networking.HTTPError{Op: "gather pokemon", Status: http.StatusTooManyRequests, Message: "Gather is on cooldown"}
	m, cmd := update(t, m, gatherDoneMsg{characterID: 1, err: rejected})

	assert.Nil(t, cmd)
	assert.False(t, m.page.Gathering)
	assert.True(t, m.page.GatherEnabled())
	assert.Equal(t, "Gather is on cooldown", m.page.Status)
}

func TestResultsForOtherCharactersDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1)...)

	m, _ = update(t, m, inventoryLoadedMsg{characterID: 2, items: testPokemon(5, 6, 7)})
	assert.Len(t, m.page.Inventory.Items, 1)

	m, _ = update(t, m, characterLoadedMsg{characterID: 2, characters: []networking.Character{{ID: 1, FirstName: "Wrong"}}})
	assert.Nil(t, m.page.Character)

	m, _ = update(t, m, decksLoadedMsg{characterID: 2, decks: []networking.DeckDetail{{Name: "Other"}}})
	assert.Empty(t, m.page.Decks)
	assert.Equal(t, state.LoadPending, m.page.DecksLoad)
}

func TestCharacterTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := NewModel(api, 2, components.NewBreadcrumb())
	assert.Contains(t, m.View(), "Character #2")

	m, _ = update(t, m, characterLoadedMsg{characterID: 2, characters: []networking.Character{
		{ID: 1, FirstName: "Ash", LastName: "Ketchum"},
		{ID: 2, FirstName: "John", LastName: "Jonas"},
	}})
	assert.Contains(t, m.View(), "John Jonas's page")

	m, _ = update(t, m, characterLoadedMsg{characterID: 2, err: errors.New("boom")})
	assert.Equal(t, "Failed to load character data.", m.page.Status)
}

func TestLoadFailuresShowStatusText(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := NewModel(api, 1, components.NewBreadcrumb())
	view := m.View()
	assert.Contains(t, view, "Loading decks...")
	assert.Contains(t, view, "Loading Pokémon...")

	m, _ = update(t, m, decksLoadedMsg{characterID: 1, err: errors.New("boom")})
	m, _ = update(t, m, inventoryLoadedMsg{characterID: 1, err: errors.New("boom")})

	view = m.View()
	assert.Contains(t, view, "Failed to load decks.")
	assert.Contains(t, view, "Failed to load Pokémon.")
}

func TestDeckModalRefusedWithoutPokemon(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api)
	m, _ = update(t, m, runes("d"))

	assert.Nil(t, m.deckModal)
	assert.Equal(t, "This character has no Pokémon to create a deck.", m.page.Status)
}

func TestDeckModalTypingDoesNotTriggerShortcuts(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1, 2)...)
	m, _ = update(t, m, runes("d"))
	require.NotNil(t, m.deckModal)

	for _, r := range "grid" {
		m, _ = update(t, m, runes(string(r)))
	}

	assert.False(t, m.page.Gathering)
	assert.Equal(t, "grid", m.page.Draft.Name)
	assert.Contains(t, m.View(), "Create Deck")
}

func TestDeckModalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)
	api.EXPECT().CreateDeck(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m := loadedModel(t, api, testPokemon(1, 2)...)
	m, _ = update(t, m, runes("d"))

	m, cmd := update(t, m, enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, "Please enter a deck name.", m.deckModal.err)

	m, _ = update(t, m, runes("Team"))
	m, cmd = update(t, m, enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, "Please select at least one Pokémon.", m.deckModal.err)
	assert.Contains(t, m.View(), "Please select at least one Pokémon.")
}

func TestDeckModalSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	api.EXPECT().CreateDeck(gomock.Any(), 1, networking.NewDeck{Name: "Team Fire", PokemonIDs: []int{2}}).Return(nil)

	m := loadedModel(t, api, testPokemon(1, 2)...)
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("Team Fire"))

	// down moves into the checklist, the second down lands on the second pokemon
	m, _ = update(t, m, downKey)
	m, _ = update(t, m, downKey)
	m, _ = update(t, m, spaceKey)
	require.Equal(t, []int{2}, m.page.Draft.Selected)

	m, cmd := update(t, m, enterKey)
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(deckSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	m, cmd = update(t, m, saved)
	assert.NotNil(t, cmd)
	assert.Nil(t, m.deckModal)
	assert.Nil(t, m.page.Draft)
	assert.Equal(t, `Deck "Team Fire" created successfully.`, m.page.Status)
	assert.Equal(t, state.LoadPending, m.page.DecksLoad)
}

func TestDeckModalSaveFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1)...)
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("Team"))
	m, _ = update(t, m, downKey)
	m, _ = update(t, m, spaceKey)

	m, _ = update(t, m, deckSavedMsg{characterID: 1, modalToken: m.deckModal.token, name: "Team", err: errors.New("Deck name already taken")})

	require.NotNil(t, m.deckModal)
	assert.Equal(t, "Deck name already taken", m.deckModal.err)
	assert.Equal(t, []int{1}, m.page.Draft.Selected)
	assert.Equal(t, "Team", m.page.Draft.Name)
}

func TestDeckSavedAfterCancelStillReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	api.EXPECT().CreateDeck(gomock.Any(), 1, gomock.Any()).Return(nil)

	m := loadedModel(t, api, testPokemon(1)...)
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("Team"))
	m, _ = update(t, m, downKey)
	m, _ = update(t, m, spaceKey)

	m, saveCmd := update(t, m, enterKey)
	require.NotNil(t, saveCmd)
	m, _ = update(t, m, escKey)
	require.Nil(t, m.deckModal)

	m, cmd := update(t, m, saveCmd())
	assert.NotNil(t, cmd, "decks should reload after a save the user walked away from")
	assert.Equal(t, `Deck "Team" created successfully.`, m.page.Status)
	assert.Equal(t, state.LoadPending, m.page.DecksLoad)
}

func TestLateDeckSaveLeavesReopenedModal(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	api.EXPECT().CreateDeck(gomock.Any(), 1, gomock.Any()).Return(nil)

	m := loadedModel(t, api, testPokemon(1, 2)...)
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("Team"))
	m, _ = update(t, m, downKey)
	m, _ = update(t, m, spaceKey)

	m, saveCmd := update(t, m, enterKey)
	require.NotNil(t, saveCmd)
	m, _ = update(t, m, escKey)

	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, runes("Other"))
	require.NotNil(t, m.deckModal)

	m, _ = update(t, m, saveCmd())
	require.NotNil(t, m.deckModal, "an older save must not close the new modal")
	require.NotNil(t, m.page.Draft)
	assert.Equal(t, "Other", m.page.Draft.Name)
	assert.Equal(t, `Deck "Team" created successfully.`, m.page.Status)
}

func TestDeckModalCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1)...)
	m, _ = update(t, m, runes("d"))
	m, _ = update(t, m, escKey)

	assert.Nil(t, m.deckModal)
	assert.Nil(t, m.page.Draft)
}

func TestInfoModal(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	m := loadedModel(t, api, testPokemon(1)...)
	m, _ = update(t, m, runes("i"))
	require.True(t, m.showInfo)

	view := m.View()
	assert.Contains(t, view, "Charmander")
	assert.Contains(t, view, "Type: fire")
	assert.Contains(t, view, "HP: 39")
	assert.Contains(t, view, "Attack: 52")
	assert.Contains(t, view, "Defence: 43")

	m, _ = update(t, m, escKey)
	assert.False(t, m.showInfo)
}

type screen struct{ name string }

func (s screen) Init() tea.Cmd                       { return nil }
func (s screen) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s screen) View() string                        { return s.name }

func TestBackTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := networkingmock.NewMockAPI(ctrl)

	backtrack := components.NewBreadcrumb().PushNew(func() tea.Model { return screen{"list"} })
	m := NewModel(api, 1, backtrack)
	m, _ = update(t, m, inventoryLoadedMsg{characterID: 1, items: testPokemon(1)})

	next := time.Now().Add(time.Hour)
	m.page.Cooldown.Start(networking.GatherResult{NextGatherAt: &next}, time.Hour)
	require.True(t, m.page.Cooldown.Running())

	newModel, _ := m.Update(escKey)
	assert.Equal(t, screen{"list"}, newModel)
	assert.False(t, m.page.Cooldown.Running())
}
