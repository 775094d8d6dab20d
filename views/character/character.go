package character

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var pageLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "character-page").Logger()
	return &logger
}

var (
	gridLeftKey  = key.NewBinding(key.WithKeys("left", "h"))
	gridRightKey = key.NewBinding(key.WithKeys("right", "l"))
)

const inventoryColumns = 4

// Model is a single character's screen: their decks, their pokemon and the gather button
type Model struct {
	api       networking.API
	backtrack components.Breadcrumbs

	page   *state.CharacterPage
	cursor int

	showInfo  bool
	deckModal *deckModal
	// bumped each time the deck modal opens
	modalSeq int
}

func NewModel(api networking.API, characterID int, backtrack components.Breadcrumbs) Model {
	return Model{
		api:       api,
		backtrack: backtrack,
		page:      state.NewCharacterPage(characterID, global.Opt.GatherCooldown),
	}
}

// Page exposes the screen's state, mostly for tests
func (m Model) Page() *state.CharacterPage {
	return m.page
}

func (m Model) Init() tea.Cmd {
	m.page.Status = "Loading character..."
	id := m.page.CharacterID

	return tea.Sequence(
		loadCharacter(m.api, id),
		loadDecks(m.api, id),
		loadInventory(m.api, id),
	)
}

func (m Model) reload() tea.Cmd {
	id := m.page.CharacterID
	m.page.DecksLoad = state.LoadPending
	m.page.InventoryLoad = state.LoadPending

	return tea.Sequence(loadDecks(m.api, id), loadInventory(m.api, id))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case characterLoadedMsg:
		if msg.characterID != m.page.CharacterID {
			return m, nil
		}

		m.page.Status = ""
		if msg.err != nil {
			pageLogger().Err(msg.err).Int("characterId", msg.characterID).Msg("failed to load character")
			m.page.Status = "Failed to load character data."
			return m, nil
		}

		if c, ok := lo.Find(msg.characters, func(c networking.Character) bool { return c.ID == msg.characterID }); ok {
			m.page.Character = &c
		}

		return m, nil
	case decksLoadedMsg:
		if msg.characterID != m.page.CharacterID {
			return m, nil
		}

		if msg.err != nil {
			pageLogger().Err(msg.err).Int("characterId", msg.characterID).Msg("failed to load decks")
			m.page.DecksLoad = state.LoadFailed
			return m, nil
		}

		m.page.Decks = msg.decks
		m.page.DecksLoad = state.LoadReady
		return m, nil
	case inventoryLoadedMsg:
		if msg.characterID != m.page.CharacterID {
			return m, nil
		}

		if msg.err != nil {
			pageLogger().Err(msg.err).Int("characterId", msg.characterID).Msg("failed to load inventory")
			m.page.InventoryLoad = state.LoadFailed
			return m, nil
		}

		m.page.LoadInventory(msg.items)
		m.cursor = min(m.cursor, max(len(msg.items)-1, 0))
		return m, nil
	case gatherDoneMsg:
		if msg.characterID != m.page.CharacterID {
			return m, nil
		}

		return m, m.gatherDone(msg)
	case deckSavedMsg:
		if msg.characterID != m.page.CharacterID {
			return m, nil
		}

		// The modal may have been cancelled or reopened while the save was in flight
		sameModal := m.deckModal != nil && m.deckModal.token == msg.modalToken
		if msg.err != nil {
			pageLogger().Err(msg.err).Int("characterId", msg.characterID).Msg("failed to create deck")
			if sameModal {
				m.deckModal.saving = false
				m.deckModal.err = msg.err.Error()
			} else {
				m.page.Status = msg.err.Error()
			}
			return m, nil
		}

		if sameModal {
			m.closeDeckModal()
		}
		m.page.Status = fmt.Sprintf("Deck %q created successfully.", msg.name)
		m.page.DecksLoad = state.LoadPending
		return m, loadDecks(m.api, m.page.CharacterID)
	case state.CooldownTickMsg:
		return m, m.page.Cooldown.HandleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deckModal != nil {
		action, cmd := m.deckModal.Update(m.page.Draft, msg)
		switch action {
		case deckModalCancel:
			m.closeDeckModal()
		case deckModalSave:
			return m, saveDeck(m.api, m.page.CharacterID, m.deckModal.token, m.page.Draft)
		}

		return m, cmd
	}

	if m.showInfo {
		if key.Matches(msg, global.BackKey, global.SelectKey, global.PokemonInfoKey) {
			m.showInfo = false
		}

		return m, nil
	}

	items := m.page.Inventory.Items

	switch {
	case key.Matches(msg, global.BackKey):
		m.page.Teardown()
		prev := m.backtrack.PopDefault(func() tea.Model { return m })
		return prev, prev.Init()
	case key.Matches(msg, global.GatherKey):
		if !m.page.GatherEnabled() {
			return m, nil
		}

		m.page.Gathering = true
		m.page.Status = "Gathering Pokémon..."
		return m, gather(m.api, m.page.CharacterID)
	case key.Matches(msg, global.CreateDeckKey):
		if err := m.page.OpenDraft(); err != nil {
			m.page.Status = err.Error()
			return m, nil
		}

		m.modalSeq++
		m.deckModal = newDeckModal(m.modalSeq)
		return m, m.deckModal.Init()
	case key.Matches(msg, global.PokemonInfoKey):
		if m.cursor < len(items) {
			m.showInfo = true
		}
	case key.Matches(msg, global.ReloadKey):
		m.page.Status = ""
		return m, m.reload()
	case key.Matches(msg, gridLeftKey):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, gridRightKey):
		m.cursor = min(m.cursor+1, max(len(items)-1, 0))
	case key.Matches(msg, global.MoveUpKey):
		if m.cursor-inventoryColumns >= 0 {
			m.cursor -= inventoryColumns
		}
	case key.Matches(msg, global.MoveDownKey):
		if m.cursor+inventoryColumns < len(items) {
			m.cursor += inventoryColumns
		}
	}

	return m, nil
}

func (m Model) gatherDone(msg gatherDoneMsg) tea.Cmd {
	m.page.Gathering = false

	if msg.err != nil {
		pageLogger().Err(msg.err).Int("characterId", msg.characterID).Msg("gather failed")

		// A rejected gather keeps whatever cooldown we already knew about
		m.page.Cooldown.Refresh()
		m.page.Status = msg.err.Error()
		return nil
	}

	m.page.Status = msg.result.Message
	if m.page.Status == "" {
		m.page.Status = "Pokémon gathered successfully."
	}

	tick := m.page.Cooldown.Start(msg.result, m.page.CooldownWindow)
	return tea.Batch(tick, loadInventory(m.api, m.page.CharacterID))
}

func (m *Model) closeDeckModal() {
	m.deckModal = nil
	m.page.CloseDraft()
}

func (m Model) View() string {
	if m.deckModal != nil && m.page.Draft != nil {
		return rendering.GlobalCenter(m.deckModal.View(m.page.Draft))
	}

	items := m.page.Inventory.Items
	if m.showInfo && m.cursor < len(items) {
		return rendering.GlobalCenter(components.PokemonInfoModal(items[m.cursor]))
	}

	actions := components.RenderActions(
		components.Action{Label: m.page.GatherLabel(), Key: "g", Disabled: !m.page.GatherEnabled()},
		components.Action{Label: "Create Deck", Key: "d"},
		components.Action{Label: "Reload", Key: "r"},
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		rendering.HelpStyle.Render("← Back to characters [esc]"),
		components.CharacterTitle(m.page),
		actions,
		m.page.Status,
		"",
		rendering.SectionStyle.Render("Decks"),
		components.DeckList(m.page.Decks, m.page.DecksLoad),
		"",
		rendering.SectionStyle.Render("Pokémon Inventory"),
		components.InventoryGrid(components.InventoryView{
			Inventory: m.page.Inventory,
			Load:      m.page.InventoryLoad,
			Cursor:    m.cursor,
		}),
		rendering.HelpStyle.Render("arrows move, i info"),
	)

	return rendering.GlobalCenter(body)
}
