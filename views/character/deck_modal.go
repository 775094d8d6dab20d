package character

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/global"
	"github.com/nathanieltooley/pokedex/rendering/components"
	"github.com/nathanieltooley/pokedex/state"
)

// Arrow keys only, j and k have to be typeable in the name
var (
	checklistUpKey   = key.NewBinding(key.WithKeys("up"))
	checklistDownKey = key.NewBinding(key.WithKeys("down"))
)

type deckModalAction int

const (
	deckModalNone deckModalAction = iota
	deckModalCancel
	deckModalSave
)

// deckModal is the input side of the create deck modal, the draft itself lives on the page
type deckModal struct {
	nameInput textinput.Model
	// true while the checklist has focus rather than the name input
	picking bool
	cursor  int
	err     string
	saving  bool
	// ties save results to the modal that sent them
	token int
}

func newDeckModal(token int) *deckModal {
	input := textinput.New()
	input.Placeholder = "Team name"
	input.Prompt = ""
	input.CharLimit = 40

	return &deckModal{nameInput: input, token: token}
}

func (d *deckModal) Init() tea.Cmd {
	return d.nameInput.Focus()
}

func (d *deckModal) Update(draft *state.DeckDraft, msg tea.Msg) (deckModalAction, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.nameInput, cmd = d.nameInput.Update(msg)
		return deckModalNone, cmd
	}

	switch {
	case key.Matches(keyMsg, global.BackKey):
		return deckModalCancel, nil
	case key.Matches(keyMsg, global.SelectKey):
		if d.saving {
			return deckModalNone, nil
		}

		draft.Name = d.nameInput.Value()
		if err := draft.Validate(); err != nil {
			d.err = err.Error()
			return deckModalNone, nil
		}

		d.err = ""
		d.saving = true
		return deckModalSave, nil
	case key.Matches(keyMsg, global.DownTabKey), key.Matches(keyMsg, global.UpTabKey):
		d.picking = !d.picking
		if d.picking {
			d.nameInput.Blur()
			return deckModalNone, nil
		}

		return deckModalNone, d.nameInput.Focus()
	case key.Matches(keyMsg, checklistUpKey), key.Matches(keyMsg, checklistDownKey):
		// The first arrow press only moves focus into the checklist
		if !d.picking {
			d.picking = true
			d.nameInput.Blur()
			return deckModalNone, nil
		}

		if key.Matches(keyMsg, checklistUpKey) {
			d.cursor = max(d.cursor-1, 0)
		} else {
			d.cursor = max(min(d.cursor+1, len(draft.Inventory().Items)-1), 0)
		}
		return deckModalNone, nil
	}

	if d.picking {
		if key.Matches(keyMsg, global.ToggleKey) {
			d.toggle(draft)
		}

		return deckModalNone, nil
	}

	var cmd tea.Cmd
	d.nameInput, cmd = d.nameInput.Update(msg)
	draft.Name = d.nameInput.Value()
	return deckModalNone, cmd
}

func (d *deckModal) toggle(draft *state.DeckDraft) {
	items := draft.Inventory().Items
	if d.cursor < 0 || d.cursor >= len(items) {
		return
	}

	if err := draft.Toggle(items[d.cursor].ID); err != nil {
		d.err = err.Error()
		return
	}

	d.err = ""
}

func (d *deckModal) View(draft *state.DeckDraft) string {
	cursor := d.cursor
	if !d.picking {
		cursor = -1
	}

	return components.DeckModal(components.DeckModalView{
		Draft:     draft,
		NameInput: d.nameInput.View(),
		Cursor:    cursor,
		Error:     d.err,
	})
}
