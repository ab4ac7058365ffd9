package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Day    DayTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the month title above the grid.
type HeaderTheme struct {
	Title lipgloss.Style
	View  lipgloss.Style
}

// DayTheme styles the selected day's event list.
type DayTheme struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	Holiday     lipgloss.Style
	Weather     lipgloss.Style
	Time        lipgloss.Style
	Event       lipgloss.Style
	ActiveEvent lipgloss.Style
	Empty       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Carry  lipgloss.Style
}

// ModalTheme styles centered overlays such as help.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true),
			View:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Day: DayTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:       lipgloss.NewStyle().Bold(true).Underline(true),
			Holiday:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Weather:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Time:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Event:       lipgloss.NewStyle(),
			ActiveEvent: lipgloss.NewStyle().Bold(true),
			Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Carry:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// Swatch renders a colored block for an event color.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
