package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds every style the table view renders with
type Theme struct {
	Name string

	Header     lipgloss.Style
	Table      lipgloss.Style
	Label      lipgloss.Style
	RedCard    lipgloss.Style
	BlackCard  lipgloss.Style
	HiddenCard lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	LogBorder lipgloss.Color
}

var cardFace = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Width(3).
	Align(lipgloss.Center)

var buttonFace = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2).
	Bold(true)

// Themes are the palettes selectable with ui.theme
var Themes = map[string]Theme{
	"felt": {
		Name: "felt",
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Bold(true),
		Table: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2E7D32")).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: cardFace.
			Foreground(lipgloss.Color("#FF6B6B")).
			BorderForeground(lipgloss.Color("#FAFAFA")),
		BlackCard: cardFace.
			Foreground(lipgloss.Color("#FAFAFA")).
			BorderForeground(lipgloss.Color("#FAFAFA")),
		HiddenCard: cardFace.
			Foreground(lipgloss.Color("#4A90E2")).
			BorderForeground(lipgloss.Color("#4A90E2")),
		Button: buttonFace.
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#B5651D")).
			BorderForeground(lipgloss.Color("#B5651D")),
		ButtonDisabled: buttonFace.
			Foreground(lipgloss.Color("#626262")).
			BorderForeground(lipgloss.Color("#626262")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")),

		LogBorder: lipgloss.Color("#2E7D32"),
	},
	"dark": {
		Name: "dark",
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Table: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: cardFace.
			Foreground(lipgloss.Color("#FF6B6B")).
			BorderForeground(lipgloss.Color("#626262")),
		BlackCard: cardFace.
			Foreground(lipgloss.Color("#FAFAFA")).
			BorderForeground(lipgloss.Color("#626262")),
		HiddenCard: cardFace.
			Foreground(lipgloss.Color("#7D56F4")).
			BorderForeground(lipgloss.Color("#7D56F4")),
		Button: buttonFace.
			Foreground(lipgloss.Color("#FFD700")).
			BorderForeground(lipgloss.Color("#04B575")),
		ButtonDisabled: buttonFace.
			Foreground(lipgloss.Color("#444444")).
			BorderForeground(lipgloss.Color("#444444")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),

		LogBorder: lipgloss.Color("#626262"),
	},
	"light": {
		Name: "light",
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#E0E0E0")).
			Bold(true),
		Table: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#9E9E9E")).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1B5E20")).
			Bold(true),
		RedCard: cardFace.
			Foreground(lipgloss.Color("#C62828")).
			BorderForeground(lipgloss.Color("#000000")),
		BlackCard: cardFace.
			Foreground(lipgloss.Color("#000000")).
			BorderForeground(lipgloss.Color("#000000")),
		HiddenCard: cardFace.
			Foreground(lipgloss.Color("#1565C0")).
			BorderForeground(lipgloss.Color("#1565C0")),
		Button: buttonFace.
			Foreground(lipgloss.Color("#000000")).
			BorderForeground(lipgloss.Color("#B5651D")),
		ButtonDisabled: buttonFace.
			Foreground(lipgloss.Color("#BDBDBD")).
			BorderForeground(lipgloss.Color("#BDBDBD")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF6C00")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#757575")),

		LogBorder: lipgloss.Color("#9E9E9E"),
	},
}

// ThemeFor returns the named theme, falling back to felt
func ThemeFor(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes["felt"]
}

// SetupColor picks the terminal color profile. Colors are dropped when
// noColor is set or NO_COLOR is present in the environment.
func SetupColor(noColor bool) {
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
}
