package charlist

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/nathanieltooley/pokedex/views/character"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var charListLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "character-list").Logger()
	return &logger
}

type charactersLoadedMsg struct {
	characters []networking.Character
	err        error
}

// Model is the character list screen
type Model struct {
	api networking.API

	list   list.Model
	load   state.Load
	status string

	// nil while closed
	modal *createCharacterModal
}

func NewModel(api networking.API) Model {
	charList := list.New(nil, components.NewCharacterDelegate(), listWidth(global.TERM_WIDTH), listHeight(global.TERM_HEIGHT))
	charList.Title = "Characters"
	charList.SetShowHelp(false)
	charList.SetFilteringEnabled(false)
	charList.SetShowStatusBar(false)

	return Model{
		api:  api,
		list: charList,
		load: state.LoadPending,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCharacters()
}

func (m Model) loadCharacters() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), global.Opt.RequestTimeout)
		defer cancel()

		characters, err := api.ListCharacters(ctx)
		return charactersLoadedMsg{characters: characters, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(listWidth(msg.Width), listHeight(msg.Height))
		return m, nil
	case charactersLoadedMsg:
		if msg.err != nil {
			charListLogger().Err(msg.err).Msg("failed to load characters")
			m.load = state.LoadFailed
			return m, nil
		}

		m.load = state.LoadReady
		items := lo.Map(msg.characters, func(c networking.Character, _ int) list.Item { return c })
		return m, m.list.SetItems(items)
	case characterCreatedMsg:
		if m.modal == nil {
			return m, nil
		}

		m.modal.submitting = false
		if msg.err != nil {
			charListLogger().Err(msg.err).Msg("failed to create character")
			m.modal.err = msg.err.Error()
			return m, nil
		}

		m.modal = nil
		m.status = fmt.Sprintf("Character %q created.", msg.character.FullName())
		return m, m.loadCharacters()
	}

	if m.modal != nil {
		cmd, closed := m.modal.Update(m.api, msg)
		if closed {
			m.modal = nil
		}

		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, global.CreateKey):
			m.modal = newCreateCharacterModal()
			return m, m.modal.Init()
		case key.Matches(msg, global.ReloadKey):
			m.status = ""
			m.load = state.LoadPending
			return m, m.loadCharacters()
		case key.Matches(msg, global.SelectKey):
			selected, ok := m.list.SelectedItem().(networking.Character)
			if !ok {
				return m, nil
			}

			api := m.api
			backtrack := components.NewBreadcrumb().PushNew(func() tea.Model { return NewModel(api) })
			page := character.NewModel(api, selected.ID, backtrack)
			return page, page.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.modal != nil {
		return rendering.GlobalCenter(m.modal.View())
	}

	body := components.CharacterListStatus(m.load, len(m.list.Items()))
	if body == "" {
		body = m.list.View()
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, rendering.HeaderStyle.Render("Characters"), body)
	}

	help := components.RenderActions(
		components.Action{Label: "Create Character", Key: "c"},
		components.Action{Label: "Open", Key: "enter"},
		components.Action{Label: "Reload", Key: "r"},
	)

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, body, m.status, help))
}

func listWidth(termWidth int) int {
	return max(termWidth/2, 30)
}

// Leaves room for the status and help lines
func listHeight(termHeight int) int {
	return max(termHeight-8, components.CharacterCardHeight*2)
}
