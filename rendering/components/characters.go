package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/state"
)

const CharacterCardHeight = 6

func CharacterCard(c networking.Character, highlighted bool) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(c.FullName()),
		fmt.Sprintf("Age: %d", c.Age),
		fmt.Sprintf("Gender: %s", c.Gender),
		fmt.Sprintf("Decks: %d", c.DeckCount),
	)

	if highlighted {
		return rendering.HighlightedCardStyle.Render(body)
	}

	return rendering.CardStyle.Render(body)
}

// Text shown in place of the character cards, empty once there's something to show
func CharacterListStatus(load state.Load, count int) string {
	switch load {
	case state.LoadPending:
		return "Loading characters..."
	case state.LoadFailed:
		return "Failed to load characters."
	}

	if count == 0 {
		return "No characters yet. Create one!"
	}

	return ""
}

// The create character modal. Fields come pre-rendered from the focus list.
func CharacterModal(fields []string, errMessage string) string {
	parts := []string{rendering.HeaderStyle.Render("Create Character")}
	parts = append(parts, fields...)
	parts = append(parts,
		"",
		RenderActions(Action{Label: "Create", Key: "enter"}, Action{Label: "Cancel", Key: "esc"}),
		rendering.ErrorLine(errMessage),
	)

	return rendering.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// All the character cards stacked, or the status text when there are none to show
func CharacterCards(characters []networking.Character, load state.Load, cursor int) string {
	if status := CharacterListStatus(load, len(characters)); status != "" {
		return status
	}

	cards := make([]string, len(characters))
	for i, c := range characters {
		cards[i] = CharacterCard(c, i == cursor)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func CharacterTitle(page *state.CharacterPage) string {
	return rendering.HeaderStyle.Render(page.Title())
}
