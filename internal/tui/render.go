package tui

import (
	"strings"

	"cvchat/internal/app"

	"github.com/charmbracelet/lipgloss"
)

// renderBlocks draws a message's classified content blocks as terminal
// lines. The block sum type comes from the engine; styling stays here.
func renderBlocks(theme Theme, blocks []app.ContentBlock, width int) string {
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		switch blk.Kind {
		case app.BlockHeading:
			switch blk.Level {
			case 1:
				b.WriteString(theme.H1.Width(width).Render(blk.Text))
			case 2:
				b.WriteString(theme.H2.Render(blk.Text))
			default:
				b.WriteString(theme.H3.Render(blk.Text))
			}
		case app.BlockListItem:
			b.WriteString(theme.ListBullet.Render("  • "))
			b.WriteString(blk.Text)
		case app.BlockParagraph:
			for _, span := range blk.Spans {
				if span.Bold {
					b.WriteString(theme.Bold.Render(span.Text))
				} else {
					b.WriteString(span.Text)
				}
			}
		case app.BlockBlank:
			// the joining newline is the blank line
		}
	}
	return b.String()
}

// renderMessage draws one chat turn with its role badge.
func renderMessage(theme Theme, msg app.Message, width int, rtl bool) string {
	var badge string
	var body string

	switch msg.Role {
	case app.RoleUser:
		badge = theme.RoleYou.Render("You")
		body = msg.Content
	default:
		badge = theme.RoleAI.Render("AI")
		body = renderBlocks(theme, app.FormatContent(msg.Content), width)
	}

	if rtl {
		return alignRight(badge, width) + "\n" + alignRight(body, width)
	}
	return badge + "\n" + body
}

func alignRight(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		pad := width - lipgloss.Width(line)
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
