package chat

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hompy/domain"
)

func trimmed(s string) string { return strings.TrimSpace(s) }

func (m Model) startFetch() tea.Cmd {
	gb := m.gb
	mode := m.mode
	reqSeq := m.reqSeq
	return func() tea.Msg {
		comments, err := gb.Fetch(context.Background())
		if err != nil {
			return CommentsErrorMsg{Mode: mode, Err: err, ReqSeq: reqSeq}
		}
		return CommentsLoadedMsg{Mode: mode, Comments: comments, ReqSeq: reqSeq}
	}
}

func (m Model) startSend(c domain.Comment) tea.Cmd {
	gb := m.gb
	mode := m.mode
	return func() tea.Msg {
		return SendResultMsg{Mode: mode, Err: gb.Add(context.Background(), c)}
	}
}

func (m Model) pollTick() tea.Cmd {
	mode := m.mode
	return tea.Tick(PollInterval, func(time.Time) tea.Msg {
		return PollTickMsg{Mode: mode}
	})
}
