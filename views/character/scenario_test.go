package character

import (
	"context"
	"net/http/httptest"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/fakeserver"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// Runs a command and feeds what it produces back into the page until there's nothing left.
// Cooldown ticks are swallowed, otherwise this would run until the cooldown ends.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	if cmd == nil {
		return m
	}

	msg := cmd()
	switch msg := msg.(type) {
	case nil, state.CooldownTickMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
		return m
	}

	// tea.Sequence hands back its commands as an unexported slice type
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		for i := range v.Len() {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			m = drain(t, m, c)
		}
		return m
	}

	m, next := update(t, m, msg)
	return drain(t, m, next)
}

var gatherLabel = regexp.MustCompile(`Gather in \d+:\d\d`)

func TestCharacterPageScenario(t *testing.T) {
	server := httptest.NewServer(fakeserver.New(fakeserver.WithSeed(42)).Handler())
	t.Cleanup(server.Close)

	api := networking.NewClientWithHTTP(server.URL+"/api", server.Client())
	ctx := context.Background()

	created, err := api.CreateCharacter(ctx, networking.NewCharacter{
		FirstName: "John", LastName: "Jonas", Age: 25, Gender: "male", Starter: networking.StarterCharmander,
	})
	require.NoError(t, err)

	card := components.CharacterCard(created, false)
	assert.Contains(t, card, "Age: 25")
	assert.Contains(t, card, "Gender: male")
	assert.Contains(t, card, "Decks: 0")

	m := NewModel(api, created.ID, components.NewBreadcrumb())
	m = drain(t, m, m.Init())

	assert.Equal(t, "John Jonas's page", m.page.Title())
	require.Len(t, m.page.Inventory.Items, 1)
	assert.Contains(t, m.View(), "No decks yet.")

	m, cmd := update(t, m, runes("g"))
	assert.False(t, m.page.GatherEnabled())
	m = drain(t, m, cmd)

	require.Len(t, m.page.Inventory.Items, 11)
	assert.Len(t, m.page.Inventory.New, 10)
	assert.False(t, m.page.GatherEnabled())
	assert.Regexp(t, gatherLabel, m.page.GatherLabel())
	assert.Contains(t, m.page.Status, "Success! 10 random Pokémon")

	// The backend is still cooling down so a forced gather is rejected with its message
	m.page.Gathering = true
	m = drain(t, m, gather(api, created.ID))
	assert.Contains(t, m.page.Status, "cooldown")
	assert.Regexp(t, gatherLabel, m.page.GatherLabel())

	m, _ = update(t, m, runes("d"))
	require.NotNil(t, m.deckModal)
	m, _ = update(t, m, runes("Team Fire"))
	m, _ = update(t, m, downKey)
	for i := range 5 {
		if i > 0 {
			m, _ = update(t, m, downKey)
		}
		m, _ = update(t, m, spaceKey)
	}
	require.Len(t, m.page.Draft.Selected, 5)
	assert.NotContains(t, m.View(), "You can select up to 5 Pokémon.")

	m, cmd = update(t, m, enterKey)
	m = drain(t, m, cmd)

	assert.Equal(t, `Deck "Team Fire" created successfully.`, m.page.Status)
	require.Len(t, m.page.Decks, 1)
	deck := m.page.Decks[0]
	assert.Equal(t, "Team Fire", deck.Name)
	assert.Len(t, deck.Pokemon, 5)
	assert.NotEmpty(t, deck.Rank)

	view := m.View()
	assert.Contains(t, view, "Team Fire")
	assert.Contains(t, view, "Rank "+deck.Rank)
	assert.Equal(t, 5, strings.Count(components.DeckCard(deck), "•"))

	characters, err := api.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Contains(t, components.CharacterCard(characters[0], false), "Decks: 1")

	m.page.Teardown()
	assert.False(t, m.page.Cooldown.Running())
}

func TestCooldownTicksThroughPage(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewModel(nil, 1, components.NewBreadcrumb())
	m.page.Cooldown = state.NewCooldownWithClock(func() time.Time { return now })

	next := now.Add(2 * time.Second)
	m.page.Cooldown.Start(networking.GatherResult{NextGatherAt: &next}, time.Hour)
	require.False(t, m.page.GatherEnabled())

	tick := state.CooldownTickMsg{Gen: 0, At: now}
	// Stale generation is ignored
	m, cmd := update(t, m, tick)
	assert.Nil(t, cmd)

	now = next
	m, cmd = update(t, m, currentTick(m))
	assert.Nil(t, cmd)
	assert.True(t, m.page.GatherEnabled())
	assert.Equal(t, state.GatherLabel, m.page.GatherLabel())
}

// Builds a tick for the page's live ticker without waiting a second for tea.Tick
func currentTick(m Model) state.CooldownTickMsg {
	return state.CooldownTickMsg{Gen: m.page.Cooldown.Generation(), At: time.Now()}
}
