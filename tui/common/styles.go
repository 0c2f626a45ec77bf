package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5A97F")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the subtitle next to the title.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// TitleStyle styles a post title in the list.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// NoteStyle styles the post note line.
	NoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8E8E8E"))

	// DateStyle styles post dates and message timestamps.
	DateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// TagStyle styles the tag chip on a list row.
	TagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A9A9A9")).
			Background(lipgloss.Color("#2F2F2F")).
			Padding(0, 1).
			Faint(true)

	// PinStyle marks pinned posts.
	PinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")).
			Bold(true)

	// ActiveStyle highlights the post shown in the viewer.
	ActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F5A97F")).
			Padding(0, 1)

	// SelectedStyle highlights the cursor row.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7DC4E4")).
			Padding(0, 1)

	// UnselectedStyle gives other rows a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// LikedStyle styles the like counter of a locally liked post.
	LikedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// CounterStyle styles like/share counters.
	CounterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ViewerBorderStyle frames the content viewer pane.
	ViewerBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#45475A")).
				Padding(0, 1)

	// DividerStyle styles chat date dividers.
	DividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Faint(true)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
