package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/views/character"
	"github.com/nathanieltooley/pokedex/views/charlist"
	"github.com/rs/zerolog/log"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		global.SetTermSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, global.QuitKey) {
			return m, tea.Quit
		}
	}

	newView, cmd := m.currentView.Update(msg)
	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

// The first screen, either the character list or a character's page when one was asked for
func startingView(api networking.API, characterID int) tea.Model {
	if characterID <= 0 {
		return charlist.NewModel(api)
	}

	backtrack := components.NewBreadcrumb().PushNew(func() tea.Model { return charlist.NewModel(api) })
	return character.NewModel(api, characterID, backtrack)
}

func runTUI(characterID int) error {
	api := newAPI()

	log.Info().Str("baseUrl", api.BaseURL()).Int("character", characterID).Msg("starting pokedex")

	m := model{currentView: startingView(api, characterID)}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
