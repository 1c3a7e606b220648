package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the adaptive styles for the chat surface. Light/dark is
// resolved by the terminal background, which replaces the web client's
// dark-mode toggle.
type Theme struct {
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Error       lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor

	Header     lipgloss.Style
	Footer     lipgloss.Style
	InputBox   lipgloss.Style
	Sidebar    lipgloss.Style
	SidebarSel lipgloss.Style
	Status     lipgloss.Style
	Spinner    lipgloss.Style

	RoleYou lipgloss.Style
	RoleAI  lipgloss.Style

	H1         lipgloss.Style
	H2         lipgloss.Style
	H3         lipgloss.Style
	ListBullet lipgloss.Style
	Bold       lipgloss.Style
	Attachment lipgloss.Style
}

func NewTheme() Theme {
	var t Theme

	t.TextPrimary = lipgloss.AdaptiveColor{Light: "#0D0D0D", Dark: "#ECECEC"}
	t.TextMuted = lipgloss.AdaptiveColor{Light: "#676767", Dark: "#B4B4B4"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#10A37F", Dark: "#19C37D"}
	t.Error = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	t.Border = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#444444"}

	t.Header = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(t.Border)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.Sidebar = lipgloss.NewStyle().Foreground(t.TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(t.Border).Padding(0, 1)
	t.SidebarSel = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Status = lipgloss.NewStyle().Foreground(t.Accent)
	t.Spinner = lipgloss.NewStyle().Foreground(t.Accent)

	t.RoleYou = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5436DA", Dark: "#8B7CF6"})
	t.RoleAI = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	t.H1 = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(t.Border)
	t.H2 = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.H3 = lipgloss.NewStyle().Bold(true).Foreground(t.TextMuted)
	t.ListBullet = lipgloss.NewStyle().Foreground(t.Accent)
	t.Bold = lipgloss.NewStyle().Bold(true)
	t.Attachment = lipgloss.NewStyle().Italic(true).Foreground(t.TextMuted)

	return t
}
