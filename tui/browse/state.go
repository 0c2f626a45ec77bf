package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"hompy/app"
	"hompy/domain"
	"hompy/tui/common"
)

// PostsLoadedMsg is sent when the session post list resolves.
type PostsLoadedMsg struct {
	Posts    []domain.Post
	QueryKey string
	ReqSeq   int
}

// PostsErrorMsg is sent when the session post list cannot be loaded.
type PostsErrorMsg struct {
	Err      error
	QueryKey string
	ReqSeq   int
}

// LikeResultMsg is sent after an updateLike round-trip.
type LikeResultMsg struct {
	RowIndex int
	Count    int
	Action   app.LikeAction
	Err      error
}

// ShareResultMsg is sent after an updateShare round-trip.
type ShareResultMsg struct {
	RowIndex int
	Count    int
	Err      error
}

// ShareCopiedMsg is sent after the deep link lands on the clipboard.
type ShareCopiedMsg struct {
	RowIndex int
	Err      error
}

// --- Model ---

type modelServices struct {
	repo    *app.Repository
	counter app.CounterService
	likes   *app.LikeLedger
	log     *zap.Logger
	siteURL string // base for share deep links
}

type feedState struct {
	view     []domain.Post // full filtered/sorted view for the session
	rendered []domain.Post // pages materialized so far
	pager    Paginator
	tags     []string // "all" + distinct post tags
	tagIndex int
	query    string
	loading  bool
	err      error
	reqSeq   int
}

type viewerState struct {
	activeRow    int // rowIndex shown in the viewer, 0 = blank
	viewerURL    string
	deepLink     int // rowIndex requested via --post, 0 = none
	deepLinkDone bool
}

type searchState struct {
	searching bool
	input     textinput.Model
}

type uiState struct {
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
	cursor     int
	startIndex int     // first visible row of the list pane
	splitRatio float64 // share of the width given to the list pane
	notice     string  // transient line under the list
}

// Model holds the state for the post browser view.
type Model struct {
	modelServices
	feedState
	viewerState
	searchState
	uiState
}

// New creates a browser model with injected dependencies. siteURL is
// the base for share deep links; deepLink is the rowIndex requested on
// the command line, 0 for none.
func New(repo *app.Repository, counter app.CounterService, likes *app.LikeLedger, log *zap.Logger, siteURL string, deepLink int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	in := textinput.New()
	in.Placeholder = "search title, note or tag"
	in.CharLimit = 80
	in.Width = 32

	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		modelServices: modelServices{
			repo:    repo,
			counter: counter,
			likes:   likes,
			log:     log,
			siteURL: siteURL,
		},
		feedState: feedState{
			tags:    []string{"all"},
			loading: true,
		},
		viewerState: viewerState{
			deepLink: deepLink,
		},
		searchState: searchState{
			input: in,
		},
		uiState: uiState{
			keys:       common.DefaultKeyMap(),
			spinner:    s,
			splitRatio: 0.45,
		},
	}
}

// Init starts the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadPosts(m.reqSeq),
		m.spinner.Tick,
	)
}

// currentTag returns the selected tag filter value.
func (m Model) currentTag() string {
	if m.tagIndex < 0 || m.tagIndex >= len(m.tags) {
		return "all"
	}
	return m.tags[m.tagIndex]
}

// currentQueryKey identifies the filter/search combination a response
// belongs to. Responses for another key are stale and dropped.
func (m Model) currentQueryKey() string {
	return fmt.Sprintf("%s|%s", m.currentTag(), m.query)
}

// Searching reports whether the search input is capturing keys, so the
// router leaves plain letters alone.
func (m Model) Searching() bool {
	return m.searching
}
