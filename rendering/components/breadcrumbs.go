package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is the way back out of a screen. Each entry builds the screen to return to
// so it gets reloaded rather than shown stale.
type Breadcrumbs struct {
	backtrace []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

// Push a function that creates the previous screen onto the stack.
// Returns the modified copy.
func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	b.backtrace = append(b.backtrace, modelFunc)

	log.Debug().Msgf("Push, Len: %d", len(b.backtrace))
	return b
}

// Returns the previous screen and the remaining stack, nil if there's nowhere to go back to
func (b Breadcrumbs) Pop() (tea.Model, Breadcrumbs) {
	l := len(b.backtrace)
	if l == 0 {
		return nil, b
	}

	modelFunc := b.backtrace[l-1]
	b.backtrace = b.backtrace[0 : l-1]

	log.Debug().Msgf("Pop, Len: %d", len(b.backtrace))
	return modelFunc(), b
}

func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	model, _ := b.Pop()
	if model == nil {
		return def()
	}

	return model
}
