package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/samber/lo"
)

const (
	NewBadge    = "!!"
	InfoMarker  = "i"
	gridColumns = 4
)

type InventoryView struct {
	Inventory state.Snapshot
	Load      state.Load
	// Index of the highlighted pokemon, -1 for none
	Cursor int
}

func InventoryStatus(load state.Load, count int) string {
	switch load {
	case state.LoadPending:
		return "Loading Pokémon..."
	case state.LoadFailed:
		return "Failed to load Pokémon."
	}

	if count == 0 {
		return "This character has no Pokémon yet."
	}

	return ""
}

func PokemonCard(p networking.Pokemon, isNew bool, highlighted bool) string {
	badge := " "
	if isNew {
		badge = rendering.BadgeStyle.Render(NewBadge)
	}

	name := rendering.DisplayName(p.Name)
	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(18).Render(name),
		"["+InfoMarker+"]",
	)
	body := lipgloss.JoinVertical(lipgloss.Left, badge, footer)

	switch {
	case highlighted:
		return rendering.HighlightedCardStyle.Render(body)
	case isNew:
		return rendering.NewCardStyle.Render(body)
	default:
		return rendering.CardStyle.Render(body)
	}
}

func InventoryGrid(v InventoryView) string {
	if status := InventoryStatus(v.Load, len(v.Inventory.Items)); status != "" {
		return status
	}

	cards := make([]string, len(v.Inventory.Items))
	for i, p := range v.Inventory.Items {
		cards[i] = PokemonCard(p, v.Inventory.IsNew(p.ID), i == v.Cursor)
	}

	rows := lo.Map(lo.Chunk(cards, gridColumns), func(row []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, row...)
	})

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// The info modal for a single pokemon
func PokemonInfoModal(p networking.Pokemon) string {
	stats := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Type: %s", p.Types),
		fmt.Sprintf("HP: %d", p.Hp),
		fmt.Sprintf("Attack: %d", p.Attack),
		fmt.Sprintf("Defence: %d", p.Defence),
	)

	return rendering.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		rendering.HeaderStyle.Render(rendering.DisplayName(p.Name)),
		rendering.HelpStyle.Render(p.BestSprite()),
		"",
		stats,
		"",
		RenderActions(Action{Label: "Close", Key: "esc"}),
	))
}
