package browse

import "hompy/domain"

// selectedPost returns the post under the cursor.
func (m Model) selectedPost() (domain.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rendered) {
		return domain.Post{}, false
	}
	return m.rendered[m.cursor], true
}

// activate points the viewer pane at the given post. Only one post is
// active at a time.
func (m *Model) activate(p domain.Post) {
	m.activeRow = p.RowIndex
	m.viewerURL = domain.ViewerURL(p.Type, p.ID)
	m.notice = ""

	for i := range m.rendered {
		if m.rendered[i].RowIndex == p.RowIndex {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
}

// activePost returns the post shown in the viewer pane.
func (m Model) activePost() (domain.Post, bool) {
	if m.activeRow == 0 {
		return domain.Post{}, false
	}
	for _, p := range m.rendered {
		if p.RowIndex == m.activeRow {
			return p, true
		}
	}
	return domain.Post{}, false
}

func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	if m.cursor >= m.startIndex+visible {
		m.startIndex = m.cursor - visible + 1
	}
}
