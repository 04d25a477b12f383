package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/wille/internal/model"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	Group lipgloss.Color
	Done  lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header lipgloss.Style

	Subject        lipgloss.Style
	SubjectFocused lipgloss.Style
	Todo           lipgloss.Style
	TodoFocused    lipgloss.Style
	TodoDone       lipgloss.Style
	Muted          lipgloss.Style
	Hint           lipgloss.Style

	Input  lipgloss.Style
	Dialog lipgloss.Style

	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Subject: lipgloss.NewStyle().
			Foreground(t.Group).
			Bold(true).
			Padding(0, 1),

		SubjectFocused: lipgloss.NewStyle().
			Foreground(t.Group).
			Background(t.Highlight).
			Bold(true).
			Padding(0, 1),

		Todo: lipgloss.NewStyle().
			Foreground(t.Foreground).
			PaddingLeft(3),

		TodoFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Highlight).
			Bold(true).
			PaddingLeft(3),

		TodoDone: lipgloss.NewStyle().
			Foreground(t.Done).
			Strikethrough(true).
			PaddingLeft(3),

		Muted: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Hint: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Warning).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),
	}
}

// MoodColor picks the color used to draw a mood
func (t Theme) MoodColor(m model.Mood) lipgloss.Color {
	switch m {
	case model.MoodWorst:
		return t.Error
	case model.MoodSad:
		return t.Warning
	case model.MoodHappy, model.MoodCool:
		return t.Info
	case model.MoodJoyful:
		return t.Success
	default:
		return t.Subtle
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Nord,
	Styles: NewStyles(Nord),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
	}
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
