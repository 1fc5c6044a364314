package views

import "github.com/charmbracelet/lipgloss"

// Palette holds the blue and cyan tones used across every screen.
type Palette struct {
	Blue950 string
	Blue700 string
	Blue600 string
	Blue300 string
	Blue200 string
	Blue50  string
	Cyan500 string
	Cyan300 string
	Cyan200 string
	Red400  string
	Red500  string
	Green   string
	White   string
	Muted   string
}

var Colours = Palette{
	Blue950: "#172554",
	Blue700: "#1d4ed8",
	Blue600: "#2563eb",
	Blue300: "#93c5fd",
	Blue200: "#bfdbfe",
	Blue50:  "#eff6ff",
	Cyan500: "#06b6d4",
	Cyan300: "#67e8f9",
	Cyan200: "#a5f3fc",
	Red400:  "#f87171",
	Red500:  "#ef4444",
	Green:   "#4ade80",
	White:   "#ffffff",
	Muted:   "#a6adc8",
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Colours.Cyan300)).
			Padding(1, 3).
			Width(52)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Cyan300)).
			Bold(true).
			Align(lipgloss.Center).
			Width(46)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Blue200)).
			Align(lipgloss.Center).
			Width(46)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Blue300)).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Colours.Blue300)).
			Padding(0, 1).
			Width(44)

	focusedInputStyle = inputStyle.
				BorderForeground(lipgloss.Color(Colours.Cyan500))

	invalidInputStyle = inputStyle.
				BorderForeground(lipgloss.Color(Colours.Red400))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Red500))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Green)).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Blue950)).
			Background(lipgloss.Color(Colours.Cyan500)).
			Bold(true).
			Padding(0, 2)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Blue600)).
			Background(lipgloss.Color(Colours.Blue50)).
			Padding(0, 1).
			Width(44)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Colours.Muted)).
			Italic(true)
)
