package components

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/networking"
)

// characterDelegate draws each list item as a character card
type characterDelegate struct {
	spacing int
}

func NewCharacterDelegate() characterDelegate {
	return characterDelegate{spacing: 0}
}

func (d characterDelegate) Height() int                             { return CharacterCardHeight }
func (d characterDelegate) Spacing() int                            { return d.spacing }
func (d characterDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d characterDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	c, ok := listItem.(networking.Character)
	if !ok {
		fmt.Fprint(w, "Invalid Item!")
		return
	}

	fmt.Fprint(w, CharacterCard(c, index == m.Index()))
}

