package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"hompy/app"
	"hompy/domain"
	"hompy/tui/common"
)

// PollInterval is how often the message list is refetched.
const PollInterval = 30 * time.Second

// Mode selects which flavor of the widget is running.
type Mode int

const (
	// ModeGuestbook asks for a name and a message.
	ModeGuestbook Mode = iota
	// ModeChatroom additionally asks for age and location.
	ModeChatroom
)

// Phase tracks the message list lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseRendered
)

// CommentsLoadedMsg is sent when the message list resolves. Mode names
// the widget instance the response belongs to.
type CommentsLoadedMsg struct {
	Mode     Mode
	Comments []domain.Comment
	ReqSeq   int
}

// CommentsErrorMsg is sent when the message list cannot be loaded.
type CommentsErrorMsg struct {
	Mode   Mode
	Err    error
	ReqSeq int
}

// SendResultMsg is sent after an addComment round-trip.
type SendResultMsg struct {
	Mode Mode
	Err  error
}

// PollTickMsg drives the periodic refetch.
type PollTickMsg struct {
	Mode Mode
}

const (
	fieldUsername = iota
	fieldAge
	fieldLocation
	fieldMessage
	fieldCount
)

// Model holds the state for one guestbook or chatroom widget.
type Model struct {
	mode   Mode
	gb     app.GuestbookService
	ids    app.IdentityStore
	log    *zap.Logger
	colors *common.ColorRing

	phase    Phase
	comments []domain.Comment
	loadErr  error
	reqSeq   int

	inputs [fieldCount]textinput.Model
	focus  int

	// honeypot mirrors the hidden form field of the site. A human
	// never fills it; anything automated that does gets dropped.
	honeypot string

	sending bool
	notice  string

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a widget model. Persisted identity (or the guestbook
// display name) prefills the form.
func New(mode Mode, gb app.GuestbookService, ids app.IdentityStore, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 60
		inputs[i].Width = 24
	}
	inputs[fieldUsername].Placeholder = "name"
	inputs[fieldAge].Placeholder = "age"
	inputs[fieldAge].CharLimit = 3
	inputs[fieldLocation].Placeholder = "location"
	inputs[fieldMessage].Placeholder = "message"
	inputs[fieldMessage].CharLimit = 200
	inputs[fieldMessage].Width = 48

	m := Model{
		mode:    mode,
		gb:      gb,
		ids:     ids,
		log:     log,
		colors:  common.NewColorRing(),
		inputs:  inputs,
		keys:    common.DefaultKeyMap(),
		spinner: s,
		phase:   PhaseFetching,
		focus:   fieldMessage,
	}
	m.prefillIdentity()
	m.inputs[m.focus].Focus()
	return m
}

func (m *Model) prefillIdentity() {
	switch m.mode {
	case ModeChatroom:
		id, ok := m.ids.LoadIdentity()
		if !ok {
			return
		}
		m.inputs[fieldUsername].SetValue(id.Username)
		m.inputs[fieldAge].SetValue(id.Age)
		m.inputs[fieldLocation].SetValue(id.Location)
		m.colors.Adopt(id.Username, id.ColorClass)
	case ModeGuestbook:
		m.inputs[fieldUsername].SetValue(m.ids.LoadName())
	}
}

// Init starts the first fetch and the poll loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startFetch(), m.pollTick(), m.spinner.Tick)
}

func (m Model) username() string { return trimmed(m.inputs[fieldUsername].Value()) }

func (m Model) age() string { return trimmed(m.inputs[fieldAge].Value()) }

func (m Model) location() string { return trimmed(m.inputs[fieldLocation].Value()) }

func (m Model) message() string { return trimmed(m.inputs[fieldMessage].Value()) }
