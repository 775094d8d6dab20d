package charlist

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
)

var starterIcons = map[string]string{
	networking.StarterCharmander: "🔥",
	networking.StarterBulbasaur:  "🌿",
	networking.StarterSquirtle:   "💧",
}

type characterCreatedMsg struct {
	character networking.Character
	err       error
}

type createCharacterModal struct {
	firstName *components.TextField
	lastName  *components.TextField
	age       *components.TextField
	gender    *components.ChoiceField
	starter   *components.ChoiceField

	focus      components.Focus
	err        string
	submitting bool
}

func newCreateCharacterModal() *createCharacterModal {
	starter := components.NewChoiceField("Starter:", networking.Starters)
	starter.Decorations = starterIcons

	m := &createCharacterModal{
		firstName: components.NewTextField("First name:", ""),
		lastName:  components.NewTextField("Last name:", ""),
		age:       components.NewTextField("Age:", ""),
		gender:    components.NewChoiceField("Gender:", networking.Genders),
		starter:   starter,
	}
	m.age.Input.CharLimit = 3
	m.focus = components.NewFocus(m.firstName, m.lastName, m.age, m.gender, m.starter)

	return m
}

func (m *createCharacterModal) Init() tea.Cmd {
	return m.focus.Start()
}

func (m *createCharacterModal) form() state.CharacterForm {
	return state.CharacterForm{
		FirstName: m.firstName.Value(),
		LastName:  m.lastName.Value(),
		Age:       m.age.Value(),
		Gender:    m.gender.Value(),
		Starter:   m.starter.Value(),
	}
}

// Returns closed = true when the modal should go away
func (m *createCharacterModal) Update(api networking.API, msg tea.Msg) (cmd tea.Cmd, closed bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.BackKey):
			return nil, true
		case key.Matches(msg, global.DownTabKey):
			return m.focus.Next(), false
		case key.Matches(msg, global.UpTabKey):
			return m.focus.Prev(), false
		case key.Matches(msg, global.SelectKey):
			return m.submit(api), false
		}
	}

	return m.focus.UpdateFocused(msg), false
}

func (m *createCharacterModal) submit(api networking.API) tea.Cmd {
	if m.submitting {
		return nil
	}

	m.err = ""
	payload, err := m.form().Validate()
	if err != nil {
		m.err = err.Error()
		return nil
	}

	m.submitting = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), global.Opt.RequestTimeout)
		defer cancel()

		character, err := api.CreateCharacter(ctx, payload)
		return characterCreatedMsg{character: character, err: err}
	}
}

func (m *createCharacterModal) View() string {
	return components.CharacterModal(m.focus.Views(), m.err)
}
