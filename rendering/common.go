package rendering

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokedex/global"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	HighlightedColor = lipgloss.Color("33")
	NewColor         = lipgloss.Color("214")
	ErrorColor       = lipgloss.Color("196")
	DisabledColor    = lipgloss.Color("241")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 2).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Padding(0, 2).Align(lipgloss.Center).Foreground(HighlightedColor)
	DisabledButtonStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 2).Align(lipgloss.Center).Foreground(DisabledColor).BorderForeground(DisabledColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)

	CardStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1).Width(24)
	HighlightedCardStyle = CardStyle.BorderForeground(HighlightedColor).Foreground(HighlightedColor)
	NewCardStyle         = CardStyle.BorderForeground(NewColor)

	HeaderStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	SectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	BadgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(NewColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	HelpStyle    = lipgloss.NewStyle().Foreground(DisabledColor)
	ModalStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Padding(1, 2)

	titleCaser = cases.Title(language.English)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

// Backend names come back lowercase ("charmander", "nidoran-f")
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// Sprite file name, full URLs don't fit inside a card
func SpriteLabel(url string) string {
	if url == "" {
		return ""
	}

	return HelpStyle.Render(path.Base(url))
}

// Renders an error line, or nothing for an empty message
func ErrorLine(message string) string {
	if message == "" {
		return ""
	}

	return ErrorStyle.Render(message)
}
