package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/rendering"
)

// Action is a button on a screen, triggered by its key rather than by moving focus to it
type Action struct {
	Label    string
	Key      string
	Disabled bool
}

func (a Action) View() string {
	text := a.Label
	if a.Key != "" {
		text = fmt.Sprintf("%s [%s]", a.Label, a.Key)
	}

	if a.Disabled {
		return rendering.DisabledButtonStyle.Render(text)
	}

	return rendering.ButtonStyle.Render(text)
}

func RenderActions(actions ...Action) string {
	views := make([]string, len(actions))
	for i, action := range actions {
		views[i] = action.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
