package tui

import (
	"fmt"
	"strings"

	"cvchat/internal/app"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 30

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	t := m.app.Strings()
	chat := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(t),
		m.chatVP.View(),
		m.renderFooter(t),
	)

	if m.sidebarOpen {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(t), chat)
	}
	return chat
}

func (m *Model) renderHeader(t app.Strings) string {
	title := t.Title
	if m.app.Pipeline.Busy() {
		title += "  " + m.theme.Spinner.Render(spinnerFrames[m.spinnerPos]) + " " + m.theme.Footer.Render(t.Typing+"...")
	}
	if m.status != "" {
		title += "  " + m.theme.Status.Render(m.status)
	}
	return m.theme.Header.Width(m.chatWidth()).Render(title)
}

func (m *Model) renderFooter(t app.Strings) string {
	var pending string
	if f := m.app.Staging.File(); f != nil {
		pending = m.theme.Attachment.Render("📎 "+f.Name) + "\n"
	}

	hints := fmt.Sprintf(
		"enter %s · ctrl+n %s · ctrl+l %s · ctrl+b %s · ctrl+e %s · ctrl+g %s · ctrl+y %s · ctrl+c quit",
		"send", t.NewChat, t.ClearChat, t.History, t.ExportChat, t.Language, t.Copy,
	)
	return pending +
		m.theme.InputBox.Width(m.chatWidth()-2).Render(m.input.View()) + "\n" +
		m.theme.Footer.Render(hints)
}

func (m *Model) renderSidebar(t app.Strings) string {
	archive := m.app.Store.Archive()

	var b strings.Builder
	b.WriteString(m.theme.Bold.Render(t.History))
	b.WriteString("\n\n")
	if len(archive) == 0 {
		b.WriteString(m.theme.Footer.Render(t.NoHistory))
	}
	for i, conv := range archive {
		label := app.Title(conv)
		if conv.ID == m.app.Store.ActiveID() {
			label = "● " + label
		}
		if i == m.sidebarSel {
			b.WriteString(m.theme.SidebarSel.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	return m.theme.Sidebar.Width(sidebarWidth - 2).Height(m.height - 2).Render(b.String())
}

func (m *Model) renderConversation() string {
	rtl := app.RTL(m.app.Language)
	width := m.chatWidth() - 2

	parts := make([]string, 0, len(m.app.Store.Messages()))
	for _, msg := range m.app.Store.Messages() {
		parts = append(parts, renderMessage(m.theme, msg, width, rtl))
	}
	if m.copied {
		parts = append(parts, m.theme.Status.Render("✓ "+m.app.Strings().Copied))
	}
	return strings.Join(parts, "\n\n")
}
