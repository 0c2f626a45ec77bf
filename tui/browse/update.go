package browse

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the browser view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostsLoadedMsg, PostsErrorMsg:
		return m.handleLoadingMsg(msg)

	case LikeResultMsg, ShareResultMsg, ShareCopiedMsg:
		return m.handleCounterMsg(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.input.Blur()
		m.query = m.input.Value()
		return m.resetAndLoad()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rendered)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}

	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.selectedPost(); ok {
			m.activate(p)
		}

	case key.Matches(msg, m.keys.Like):
		return m.handleLikeKey()

	case key.Matches(msg, m.keys.Share):
		return m.handleShareKey()

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.selectedPost(); ok && p.Link != "" {
			return m, openURL(p.Link)
		}

	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()

	case key.Matches(msg, m.keys.Refresh):
		m.repo.Reset()
		return m.resetAndLoad()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.input.SetValue(m.query)
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Tag):
		// Cycling the tag clears any pending search, as the site does.
		m.tagIndex = (m.tagIndex + 1) % len(m.tags)
		m.query = ""
		m.input.SetValue("")
		return m.resetAndLoad()

	case key.Matches(msg, m.keys.Narrow):
		if m.splitRatio > 0.25 {
			m.splitRatio -= 0.05
		}

	case key.Matches(msg, m.keys.Widen):
		if m.splitRatio < 0.65 {
			m.splitRatio += 0.05
		}
	}

	return m, nil
}

// resetAndLoad starts a page-0 load for the current filter state. A
// reset always wins over an in-flight load: the sequence bump makes the
// older response stale.
func (m Model) resetAndLoad() (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	m.err = nil
	m.notice = ""
	m.rendered = nil
	m.pager.Reset()
	m.cursor = 0
	m.startIndex = 0
	return m, m.loadPosts(m.reqSeq)
}

// loadMore materializes the next local page. Ignored while a page-0
// load is outstanding and once the view is exhausted.
func (m Model) loadMore() (Model, tea.Cmd) {
	if m.loading || m.pager.Exhausted() {
		return m, nil
	}
	m.rendered = append(m.rendered, m.pager.NextSlice(m.view)...)
	return m, nil
}
