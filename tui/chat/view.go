package chat

import (
	"fmt"
	"strings"

	"hompy/domain"
	"hompy/tui/common"
)

// View renders the widget: message log on top, input form below.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render(m.headerTitle()) + "\n\n")

	switch {
	case m.phase != PhaseRendered:
		b.WriteString(fmt.Sprintf("  %s Loading messages...\n", m.spinner.View()))
	case m.loadErr != nil:
		b.WriteString(common.ErrorStyle.Render("  "+m.fetchErrorText()) + "\n")
	case len(m.comments) == 0:
		b.WriteString("  Nobody has left a note yet...\n")
	default:
		b.WriteString(m.renderMessages())
	}

	b.WriteString("\n" + m.renderForm())
	b.WriteString("\n" + m.renderStatusBar())
	return b.String()
}

func (m Model) fetchErrorText() string {
	if m.mode == ModeChatroom {
		return "The chatroom could not be read."
	}
	return "The guestbook could not be read."
}

// headerTitle greets a known user in chatroom mode.
func (m Model) headerTitle() string {
	if m.mode == ModeChatroom {
		if name := m.username(); name != "" {
			return fmt.Sprintf("Welcome, %s~!", name)
		}
		return "Chatroom"
	}
	return "Guestbook"
}

func (m Model) renderMessages() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	lastDay := ""
	for _, c := range m.comments {
		if day := c.Day(); day != lastDay {
			b.WriteString(common.DividerStyle.Render("  ── "+day+" ──") + "\n")
			lastDay = day
		}
		b.WriteString(common.ClampLinesToWidth(m.renderMessage(c), width-2) + "\n")
	}
	return b.String()
}

func (m Model) renderMessage(c domain.Comment) string {
	name := m.colors.StyleFor(c.Username).Render(c.Username)
	if m.mode == ModeChatroom {
		speaker := fmt.Sprintf("%s(%s/%s):", name, c.Age, c.Location)
		return fmt.Sprintf("  %s %s %s",
			common.DateStyle.Render(c.Clock()), speaker, c.Message)
	}
	return fmt.Sprintf("  %s %s  %s",
		common.DateStyle.Render(c.Timestamp), name, c.Message)
}

func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString("  " + m.inputs[fieldUsername].View())
	if m.mode == ModeChatroom {
		b.WriteString("  " + m.inputs[fieldAge].View())
		b.WriteString("  " + m.inputs[fieldLocation].View())
	}
	b.WriteString("\n  " + m.inputs[fieldMessage].View())
	if m.sending {
		b.WriteString("  " + common.StatusBarStyle.Render("sending..."))
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	help := common.StatusBarStyle.Render("  tab next field · enter send · esc back")
	if m.notice != "" {
		return help + "\n" + common.ErrorStyle.Render("  "+m.notice)
	}
	return help
}
