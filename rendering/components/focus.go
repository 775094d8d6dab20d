package components

import tea "github.com/charmbracelet/bubbletea"

// Focus cycles keyboard focus through a form's fields
type Focus struct {
	Index int
	Items []Focusable
}

func NewFocus(items ...Focusable) Focus {
	return Focus{Items: items}
}

type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Update(tea.Msg) tea.Cmd
	View(focused bool) string
}

func (f *Focus) Next() tea.Cmd {
	f.Index++
	if f.Index >= len(f.Items) {
		f.Index = 0
	}

	return f.refocus()
}

func (f *Focus) Prev() tea.Cmd {
	f.Index--
	if f.Index < 0 {
		f.Index = len(f.Items) - 1
	}

	return f.refocus()
}

func (f *Focus) refocus() tea.Cmd {
	for i, item := range f.Items {
		if i != f.Index {
			item.Blur()
		}
	}

	return f.Items[f.Index].Focus()
}

func (f *Focus) Start() tea.Cmd {
	f.Index = 0
	return f.refocus()
}

// Only the focused item sees the message
func (f *Focus) UpdateFocused(msg tea.Msg) tea.Cmd {
	if len(f.Items) == 0 {
		return nil
	}

	return f.Items[f.Index].Update(msg)
}

func (f *Focus) Views() []string {
	views := make([]string, 0, len(f.Items))
	for i, item := range f.Items {
		views = append(views, item.View(i == f.Index))
	}

	return views
}
