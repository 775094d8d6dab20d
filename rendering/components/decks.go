package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/networking"
	"github.com/nathanieltooley/pokedex/rendering"
	"github.com/nathanieltooley/pokedex/state"
	"github.com/samber/lo"
)

var (
	deckCardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1).Width(28)
	rankStyle     = lipgloss.NewStyle().Bold(true).Foreground(rendering.NewColor)
)

func DeckStatus(load state.Load, count int) string {
	switch load {
	case state.LoadPending:
		return "Loading decks..."
	case state.LoadFailed:
		return "Failed to load decks."
	}

	if count == 0 {
		return "No decks yet."
	}

	return ""
}

func RankIndicator(rank string) string {
	if rank == "" {
		rank = "?"
	}

	return rankStyle.Render(fmt.Sprintf("Rank %s", rank))
}

func DeckCard(d networking.DeckDetail) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Bold(true).Width(18).Render(d.Name),
		RankIndicator(d.Rank),
	)

	members := lo.Map(d.Pokemon, func(p networking.Pokemon, _ int) string {
		entry := "• " + rendering.DisplayName(p.Name)
		if sprite := rendering.SpriteLabel(p.SpriteURL); sprite != "" {
			entry += "\n  " + sprite
		}

		return entry
	})

	return deckCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, members...)...))
}

func DeckList(decks []networking.DeckDetail, load state.Load) string {
	if status := DeckStatus(load, len(decks)); status != "" {
		return status
	}

	cards := lo.Map(decks, func(d networking.DeckDetail, _ int) string {
		return DeckCard(d)
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
