package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/state"
)

var (
	slotStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(14).Height(2)
	filledSlotStyle = slotStyle.BorderForeground(rendering.HighlightedColor)
)

type DeckModalView struct {
	Draft *state.DeckDraft
	// The rendered deck name input
	NameInput string
	Cursor    int
	Error     string
}

// Always renders MaxDeckSize slots, filled in selection order
func DeckSlots(slots [state.MaxDeckSize]*networking.Pokemon) string {
	panels := make([]string, 0, len(slots))

	for _, p := range slots {
		if p == nil {
			panels = append(panels, slotStyle.Render(""))
			continue
		}

		panels = append(panels, filledSlotStyle.Render(rendering.DisplayName(p.Name)+"\n"+rendering.SpriteLabel(p.SpriteURL)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func PokemonChecklist(draft *state.DeckDraft, cursor int) string {
	items := draft.Inventory().Items
	rows := make([]string, len(items))

	for i, p := range items {
		check := "[ ]"
		if draft.IsSelected(p.ID) {
			check = "[x]"
		}

		row := fmt.Sprintf("%s %s (%s)", check, rendering.DisplayName(p.Name), p.Types)
		if i == cursor {
			rows[i] = rendering.HighlightedItemStyle.Render(row)
		} else {
			rows[i] = rendering.ItemStyle.Render(row)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func DeckModal(v DeckModalView) string {
	return rendering.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		rendering.HeaderStyle.Render("Create Deck"),
		lipgloss.JoinHorizontal(lipgloss.Top, "Deck name: ", v.NameInput),
		"",
		rendering.SectionStyle.Render(fmt.Sprintf("Selected Pokémon (max %d)", state.MaxDeckSize)),
		DeckSlots(v.Draft.Slots()),
		"",
		rendering.SectionStyle.Render("Choose from your Pokémon"),
		PokemonChecklist(v.Draft, v.Cursor),
		"",
		RenderActions(Action{Label: "Save Deck", Key: "enter"}, Action{Label: "Cancel", Key: "esc"}),
		rendering.ErrorLine(v.Error),
	))
}
