package browse

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hompy/domain"
)

func (m Model) handleLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		if m.stale(msg.ReqSeq, msg.QueryKey) {
			return m, nil
		}
		return m.applyLoadedPosts(msg.Posts), nil

	case PostsErrorMsg:
		if m.stale(msg.ReqSeq, msg.QueryKey) {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		m.log.Warn("post load failed", zap.Error(msg.Err))
		return m, nil
	}

	return m, nil
}

// stale reports whether a load response belongs to an older request or
// to a filter state the user has since navigated away from.
func (m Model) stale(reqSeq int, queryKey string) bool {
	return reqSeq != m.reqSeq || queryKey != m.currentQueryKey()
}

func (m Model) applyLoadedPosts(posts []domain.Post) Model {
	m.loading = false
	m.err = nil

	m.tags = append([]string{"all"}, domain.Tags(posts)...)
	if m.tagIndex >= len(m.tags) {
		m.tagIndex = 0
	}

	m.view = domain.FeedView(posts, m.currentTag(), m.query)
	m.pager.Reset()
	// Copy the page: rendered must not alias the view's backing array,
	// or count mutations through one slice show up twice.
	m.rendered = append([]domain.Post(nil), m.pager.NextSlice(m.view)...)
	m.cursor = 0
	m.startIndex = 0

	if len(m.view) == 0 {
		m.notice = "No posts found."
	}

	m.resolveDeepLink()
	return m
}

// resolveDeepLink activates the post requested on the command line,
// once, after the first successful load. An unknown rowIndex leaves the
// viewer blank rather than falling back to another post.
func (m *Model) resolveDeepLink() {
	if m.deepLink == 0 || m.deepLinkDone {
		return
	}
	m.deepLinkDone = true

	for _, p := range m.view {
		if p.RowIndex == m.deepLink {
			m.revealRow(p.RowIndex)
			m.activate(p)
			return
		}
	}
	m.log.Info("deep link target not found", zap.Int("rowIndex", m.deepLink))
}

// revealRow extends the rendered pages until the given row is
// materialized, so a deep-linked post beyond page 0 is highlightable.
func (m *Model) revealRow(rowIndex int) {
	for {
		for _, p := range m.rendered {
			if p.RowIndex == rowIndex {
				return
			}
		}
		if m.pager.Exhausted() {
			return
		}
		m.rendered = append(m.rendered, m.pager.NextSlice(m.view)...)
	}
}
