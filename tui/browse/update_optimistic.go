package browse

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hompy/app"
	"hompy/domain"
)

func (m Model) handleLikeKey() (Model, tea.Cmd) {
	p, ok := m.selectedPost()
	if !ok {
		return m, nil
	}

	action := m.likes.Toggle(p.RowIndex)
	delta := 1
	if action == app.LikeDecrement {
		delta = -1
	}
	m.adjustLikeCount(p.RowIndex, delta)

	return m, m.sendLikeUpdate(p.RowIndex, action)
}

func (m Model) handleShareKey() (Model, tea.Cmd) {
	p, ok := m.selectedPost()
	if !ok {
		return m, nil
	}

	// The link is copied right away; the counter round-trip settles on
	// its own and only bumps the count on success.
	return m, tea.Batch(
		m.copyShareLink(p.RowIndex),
		m.sendShareUpdate(p.RowIndex),
	)
}

func (m Model) handleCounterMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LikeResultMsg:
		if msg.Err != nil {
			// Put the membership back so the next toggle sends the
			// right action. The optimistic count stays as shown.
			m.likes.Rollback(msg.RowIndex)
			m.notice = "Like could not be saved."
			m.log.Warn("like update failed",
				zap.Int("rowIndex", msg.RowIndex),
				zap.Error(msg.Err))
			return m, nil
		}
		m.setLikeCount(msg.RowIndex, msg.Count)

	case ShareResultMsg:
		if msg.Err != nil {
			m.log.Warn("share update failed",
				zap.Int("rowIndex", msg.RowIndex),
				zap.Error(msg.Err))
			return m, nil
		}
		m.setShareCount(msg.RowIndex, msg.Count)

	case ShareCopiedMsg:
		if msg.Err != nil {
			m.notice = "Could not copy the link to the clipboard."
			m.log.Warn("clipboard write failed", zap.Error(msg.Err))
			return m, nil
		}
		m.notice = "Link copied."
	}

	return m, nil
}

func (m *Model) adjustLikeCount(rowIndex, delta int) {
	m.mutatePost(rowIndex, func(p *domain.Post) {
		p.Like += delta
		if p.Like < 0 {
			p.Like = 0
		}
	})
}

func (m *Model) setLikeCount(rowIndex, count int) {
	m.mutatePost(rowIndex, func(p *domain.Post) { p.Like = count })
}

func (m *Model) setShareCount(rowIndex, count int) {
	m.mutatePost(rowIndex, func(p *domain.Post) { p.Share = count })
}

// mutatePost applies fn to the post in both the full view and the
// rendered pages, which hold separate copies.
func (m *Model) mutatePost(rowIndex int, fn func(*domain.Post)) {
	for i := range m.view {
		if m.view[i].RowIndex == rowIndex {
			fn(&m.view[i])
		}
	}
	for i := range m.rendered {
		if m.rendered[i].RowIndex == rowIndex {
			fn(&m.rendered[i])
		}
	}
}
