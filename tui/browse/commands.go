package browse

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"hompy/app"
)

func (m Model) loadPosts(reqSeq int) tea.Cmd {
	repo := m.repo
	queryKey := m.currentQueryKey()
	return func() tea.Msg {
		posts, err := repo.EnsureLoaded(context.Background())
		if err != nil {
			return PostsErrorMsg{Err: err, QueryKey: queryKey, ReqSeq: reqSeq}
		}
		return PostsLoadedMsg{Posts: posts, QueryKey: queryKey, ReqSeq: reqSeq}
	}
}

func (m Model) sendLikeUpdate(rowIndex int, action app.LikeAction) tea.Cmd {
	counter := m.counter
	return func() tea.Msg {
		count, err := counter.UpdateLike(context.Background(), rowIndex, action)
		return LikeResultMsg{RowIndex: rowIndex, Count: count, Action: action, Err: err}
	}
}

func (m Model) sendShareUpdate(rowIndex int) tea.Cmd {
	counter := m.counter
	return func() tea.Msg {
		count, err := counter.UpdateShare(context.Background(), rowIndex)
		return ShareResultMsg{RowIndex: rowIndex, Count: count, Err: err}
	}
}

// shareLink builds the deep link a share press copies.
func shareLink(siteURL string, rowIndex int) string {
	return fmt.Sprintf("%s?post=%d", siteURL, rowIndex)
}

// copyShareLink puts the deep link on the clipboard. It runs
// unconditionally, before the share round-trip resolves.
func (m Model) copyShareLink(rowIndex int) tea.Cmd {
	link := shareLink(m.siteURL, rowIndex)
	return func() tea.Msg {
		err := clipboard.WriteAll(link)
		return ShareCopiedMsg{RowIndex: rowIndex, Err: err}
	}
}

func openURL(rawURL string) tea.Cmd {
	if !isSafeExternalURL(rawURL) {
		return nil
	}
	return func() tea.Msg {
		_ = exec.Command("open", rawURL).Start()
		return nil
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
