package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/rendering"
)

var (
	prevChoiceKey = key.NewBinding(key.WithKeys("left", "h"))
	nextChoiceKey = key.NewBinding(key.WithKeys("right", "l"))

	labelStyle        = lipgloss.NewStyle().Width(12)
	focusedLabelStyle = labelStyle.Foreground(rendering.HighlightedColor)
)

func renderLabel(label string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render(label)
	}

	return labelStyle.Render(label)
}

type TextField struct {
	Label string
	Input textinput.Model
}

func NewTextField(label string, placeholder string) *TextField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""

	return &TextField{Label: label, Input: input}
}

func (t *TextField) Focus() tea.Cmd {
	return t.Input.Focus()
}

func (t *TextField) Blur() {
	t.Input.Blur()
}

func (t *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.Input, cmd = t.Input.Update(msg)
	return cmd
}

func (t *TextField) View(focused bool) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, renderLabel(t.Label, focused), t.Input.View())
}

func (t *TextField) Value() string {
	return t.Input.Value()
}

// ChoiceField picks one of a fixed set of options with left/right.
// Nothing is chosen until the user moves.
type ChoiceField struct {
	Label   string
	Options []string
	// Shown next to an option, e.g. an icon for a starter
	Decorations map[string]string

	index int
}

func NewChoiceField(label string, options []string) *ChoiceField {
	return &ChoiceField{Label: label, Options: options, index: -1}
}

func (c *ChoiceField) Focus() tea.Cmd { return nil }
func (c *ChoiceField) Blur()          {}

func (c *ChoiceField) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if len(c.Options) == 0 {
			return nil
		}

		if key.Matches(msg, nextChoiceKey) {
			c.index++
			if c.index >= len(c.Options) {
				c.index = 0
			}
		}

		if key.Matches(msg, prevChoiceKey) {
			c.index--
			if c.index < 0 {
				c.index = len(c.Options) - 1
			}
		}
	}

	return nil
}

func (c *ChoiceField) Select(option string) {
	for i, o := range c.Options {
		if o == option {
			c.index = i
			return
		}
	}
}

// Empty when nothing has been picked yet
func (c *ChoiceField) Value() string {
	if c.index < 0 || c.index >= len(c.Options) {
		return ""
	}

	return c.Options[c.index]
}

func (c *ChoiceField) View(focused bool) string {
	options := make([]string, 0, len(c.Options))
	for i, o := range c.Options {
		text := o
		if deco, ok := c.Decorations[o]; ok {
			text = fmt.Sprintf("%s %s", o, deco)
		}

		if i == c.index {
			options = append(options, fmt.Sprintf("(•) %s", text))
		} else {
			options = append(options, fmt.Sprintf("( ) %s", text))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderLabel(c.Label, focused), strings.Join(options, "  "))
}
