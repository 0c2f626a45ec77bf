package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hompy/app"
	"hompy/tui/browse"
	"hompy/tui/chat"
	"hompy/tui/common"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Repo      *app.Repository
	Counter   app.CounterService
	Guestbook app.GuestbookService
	Likes     *app.LikeLedger
	Identity  app.IdentityStore
	Log       *zap.Logger
	SiteURL   string // base for share deep links
	DeepLink  int    // rowIndex from --post, 0 for none
}

type activeView int

const (
	browseView activeView = iota
	guestbookView
	chatroomView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps      Deps
	active    activeView
	browse    browse.Model
	guestbook chat.Model
	chatroom  chat.Model
	keys      common.KeyMap

	// A widget's fetch/poll loop starts the first time it is opened
	// and keeps running in the background after that.
	guestbookStarted bool
	chatroomStarted  bool
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:      deps,
		active:    browseView,
		browse:    browse.New(deps.Repo, deps.Counter, deps.Likes, deps.Log, deps.SiteURL, deps.DeepLink),
		guestbook: chat.New(chat.ModeGuestbook, deps.Guestbook, deps.Identity, deps.Log),
		chatroom:  chat.New(chat.ModeChatroom, deps.Guestbook, deps.Identity, deps.Log),
		keys:      common.DefaultKeyMap(),
	}
}

// Init delegates to the browse view; the widgets start their own polls
// when first opened.
func (a App) Init() tea.Cmd {
	return a.browse.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Every sub-view needs to know the terminal size.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.browse, cmd = a.browse.Update(msg)
		cmds = append(cmds, cmd)
		a.guestbook, cmd = a.guestbook.Update(msg)
		cmds = append(cmds, cmd)
		a.chatroom, cmd = a.chatroom.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		if a.active == browseView && !a.browse.Searching() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.Guestbook):
				a.active = guestbookView
				if !a.guestbookStarted {
					a.guestbookStarted = true
					return a, a.guestbook.Init()
				}
				return a, nil
			case key.Matches(msg, a.keys.Chat):
				a.active = chatroomView
				if !a.chatroomStarted {
					a.chatroomStarted = true
					return a, a.chatroom.Init()
				}
				return a, nil
			}
		}

		if a.active != browseView && key.Matches(msg, a.keys.Back) {
			a.active = browseView
			return a, nil
		}

	case chat.CommentsLoadedMsg, chat.CommentsErrorMsg, chat.SendResultMsg, chat.PollTickMsg:
		// Widget traffic flows even while the browser is in front; the
		// widgets filter by mode themselves.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.guestbook, cmd = a.guestbook.Update(msg)
		cmds = append(cmds, cmd)
		a.chatroom, cmd = a.chatroom.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)
	}

	return a.routeToActive(msg)
}

func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case guestbookView:
		a.guestbook, cmd = a.guestbook.Update(msg)
	case chatroomView:
		a.chatroom, cmd = a.chatroom.Update(msg)
	default:
		a.browse, cmd = a.browse.Update(msg)
	}
	return a, cmd
}

// View renders the active sub-view.
func (a App) View() string {
	switch a.active {
	case guestbookView:
		return a.guestbook.View()
	case chatroomView:
		return a.chatroom.View()
	default:
		return a.browse.View()
	}
}
