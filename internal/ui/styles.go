package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Corkboard Palette
	Primary   = lipgloss.Color("#E8A33D") // Amber
	Secondary = lipgloss.Color("#5FB3B3") // Teal
	Success   = lipgloss.Color("#99C794") // Sage Green
	ErrorCol  = lipgloss.Color("#EC5F67") // Coral Red
	Text      = lipgloss.Color("#FFFFFF") // Pure White
	Muted     = lipgloss.Color("#888888") // Medium Gray

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(1, 1).
			MarginLeft(1)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(Muted).
			PaddingLeft(2).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Muted).
			MarginLeft(2).
			Width(64)

	PostStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Muted).
			MarginLeft(2).
			MarginBottom(1).
			Width(64)

	SelectedPostStyle = PostStyle.
				BorderForeground(Primary)

	PostAuthorStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	PostMetaStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ModalStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			MarginLeft(4).
			Width(60)

	InfoKeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(16)

	InfoValueStyle = lipgloss.NewStyle().
			Foreground(Text)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Success).
			PaddingLeft(2)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorCol).
			PaddingLeft(2)

	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1).
			PaddingLeft(4).
			Faint(true)
)

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Success)
}
