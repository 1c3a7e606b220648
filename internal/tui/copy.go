package tui

import (
	"time"

	"cvchat/internal/app"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyLastReply copies the most recent assistant turn to the system
// clipboard and arms the transient "Copied!" feedback, which resets
// after two seconds.
func (m *Model) copyLastReply() tea.Cmd {
	msgs := m.app.Store.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role != app.RoleAssistant {
			continue
		}
		if err := clipboard.WriteAll(msgs[i].Content); err != nil {
			return m.flashStatus(err.Error())
		}
		m.copied = true
		m.refreshChat()
		return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return copyResetMsg{}
		})
	}
	return nil
}
