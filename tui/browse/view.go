package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hompy/domain"
	"hompy/tui/common"
)

const (
	rowHeight      = 5 // 3 content lines + border
	reservedHeight = 8 // header, filter line, status bar
)

// View renders the browser as a split pane: post list on the left,
// content viewer on the right.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}

	var b strings.Builder

	title := common.AppTitleStyle.Render("hompy")
	tagline := common.TaglineStyle.Render("<posts, likes and a guestbook>")
	b.WriteString(title + tagline + "\n")
	b.WriteString(m.renderFilterLine() + "\n")

	listWidth := int(float64(width) * m.splitRatio)
	if listWidth < 30 {
		listWidth = 30
	}
	viewerWidth := width - listWidth - 2
	if viewerWidth < 20 {
		viewerWidth = 20
	}

	left := m.renderList(listWidth)
	right := m.renderViewer(viewerWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderFilterLine() string {
	tag := common.TagStyle.Render("#" + m.currentTag())
	if m.searching {
		return fmt.Sprintf("  %s  search: %s", tag, m.input.View())
	}
	if m.query != "" {
		return fmt.Sprintf("  %s  search: %q", tag, m.query)
	}
	return "  " + tag
}

func (m Model) renderList(width int) string {
	if m.loading && len(m.rendered) == 0 {
		return fmt.Sprintf("\n  %s Loading posts...\n", m.spinner.View())
	}
	if m.err != nil {
		return common.ErrorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) +
			"\n\n  Press r to retry.\n"
	}
	if len(m.rendered) == 0 {
		return "\n  No posts found.\n"
	}

	visible := m.visibleRows()
	start := m.startIndex
	if start < 0 {
		start = 0
	}
	if start >= len(m.rendered) {
		start = len(m.rendered) - 1
	}
	end := start + visible
	if end > len(m.rendered) {
		end = len(m.rendered)
	}

	innerWidth := width - 4 // border + padding

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rendered[i], i, innerWidth))
		b.WriteString("\n")
	}

	if !m.pager.Exhausted() {
		b.WriteString(common.StatusBarStyle.Render("  m: load more"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderRow(p domain.Post, index, width int) string {
	title := common.TitleStyle.Render(common.Truncate(p.Title, width-14))
	if p.Pin {
		title = common.PinStyle.Render("★ ") + title
	}
	date := common.DateStyle.Render(p.DisplayDate())
	header := title + " " + date

	note := common.NoteStyle.Render(common.Truncate(p.Note, width))

	likeIcon := "♡"
	likeStyle := common.CounterStyle
	if m.likes.Liked(p.RowIndex) {
		likeIcon = "♥"
		likeStyle = common.LikedStyle
	}
	counters := fmt.Sprintf("%s %s  ↗ %d",
		likeStyle.Render(likeIcon),
		likeStyle.Render(fmt.Sprintf("%d", p.Like)),
		p.Share)
	meta := common.TagStyle.Render("#"+p.Tag) + "  " + counters

	body := header + "\n" + note + "\n" + meta
	body = common.ClampLinesToWidth(body, width)

	style := common.UnselectedStyle
	switch {
	case index == m.cursor:
		style = common.SelectedStyle
	case p.RowIndex == m.activeRow:
		style = common.ActiveStyle
	}
	return style.Width(width + 2).Render(body)
}

func (m Model) renderViewer(width int) string {
	inner := width - 4

	p, ok := m.activePost()
	if !ok {
		empty := common.StatusBarStyle.Render("No post open.\n\nSelect a post and press enter.")
		return common.ViewerBorderStyle.Width(width).Render(empty)
	}

	var b strings.Builder
	b.WriteString(common.TitleStyle.Render(common.Truncate(p.Title, inner)) + "\n")
	b.WriteString(common.DateStyle.Render(p.DisplayDate()) +
		"  " + common.TagStyle.Render("#"+p.Tag) + "\n\n")

	if p.Note != "" {
		b.WriteString(common.ClampLinesToWidth(p.Note, inner) + "\n\n")
	}

	if m.viewerURL != "" {
		b.WriteString(common.NoteStyle.Render(string(p.Type)+" · ") +
			common.Truncate(m.viewerURL, inner) + "\n")
	}
	if p.Link != "" {
		b.WriteString(common.NoteStyle.Render("link · ") +
			common.Truncate(p.Link, inner) + "\n")
		b.WriteString(common.StatusBarStyle.Render("o: open in browser") + "\n")
	}

	b.WriteString("\n" + common.CounterStyle.Render(
		fmt.Sprintf("♥ %d  ↗ %d", p.Like, p.Share)))

	return common.ViewerBorderStyle.Width(width).Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m Model) renderStatusBar() string {
	help := "↑/↓ move · enter open · l like · s share · / search · t tag · r refresh · g guestbook · c chat · q quit"
	bar := common.StatusBarStyle.Render("  " + help)
	if m.notice != "" {
		bar += "\n" + common.SuccessStyle.Render("  "+m.notice)
	}
	return bar
}

func (m Model) visibleRows() int {
	available := m.height - reservedHeight
	if available < rowHeight {
		return 1
	}
	return available / rowHeight
}
