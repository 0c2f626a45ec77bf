package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hompy/domain"
)

// Update handles messages for the widget.
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

	case PollTickMsg:
		if msg.Mode != m.mode {
			return m, nil
		}
		// Polls never touch the send lock, and keep ticking even when
		// a fetch fails.
		m.reqSeq++
		refresh := m.startFetch()
		return m, tea.Batch(refresh, m.pollTick())

	case CommentsLoadedMsg:
		if msg.Mode != m.mode || msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.phase = PhaseRendered
		m.loadErr = nil
		m.comments = msg.Comments
		for _, c := range m.comments {
			m.colors.ClassFor(c.Username)
		}
		return m, nil

	case CommentsErrorMsg:
		if msg.Mode != m.mode || msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.phase = PhaseRendered
		m.loadErr = msg.Err
		m.log.Warn("comment fetch failed", zap.Error(msg.Err))
		return m, nil

	case SendResultMsg:
		if msg.Mode != m.mode {
			return m, nil
		}
		m.sending = false
		if msg.Err != nil {
			m.notice = "Message could not be sent."
			m.log.Warn("comment send failed", zap.Error(msg.Err))
			return m, nil
		}
		m.inputs[fieldMessage].SetValue("")
		m.notice = ""
		m.reqSeq++
		return m, m.startFetch()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = m.nextField(msg.String() == "shift+tab")
		m.inputs[m.focus].Focus()
		return m, nil

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) nextField(backwards bool) int {
	step := 1
	if backwards {
		step = fieldCount - 1
	}
	next := (m.focus + step) % fieldCount
	if m.mode == ModeGuestbook {
		// The guestbook form only has a name and a message.
		for next == fieldAge || next == fieldLocation {
			next = (next + step) % fieldCount
		}
	}
	return next
}

// submit validates the form and starts the send. The hidden honeypot
// field drops the attempt silently, with no request made.
func (m Model) submit() (Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	if trimmed(m.honeypot) != "" {
		m.log.Warn("honeypot triggered, dropping message")
		return m, nil
	}

	c := domain.Comment{
		Username: m.username(),
		Message:  m.message(),
	}
	if m.mode == ModeChatroom {
		c.Age = m.age()
		c.Location = m.location()
	}

	if err := m.validate(c); err != nil {
		m.notice = noticeFor(err)
		return m, nil
	}

	m.persistIdentity()
	m.sending = true
	m.notice = ""
	return m, m.startSend(c)
}

func (m Model) validate(c domain.Comment) error {
	switch {
	case c.Message == "":
		return domain.ErrEmptyMessage
	case m.mode == ModeChatroom && (c.Username == "" || c.Age == "" || c.Location == ""):
		return domain.ErrMissingIdentity
	case c.Username == "":
		return domain.ErrEmptyName
	}
	return nil
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return "Write a message first."
	case errors.Is(err, domain.ErrMissingIdentity):
		return "Name, age and location are all required."
	case errors.Is(err, domain.ErrEmptyName):
		return "A name is required."
	default:
		return err.Error()
	}
}

// persistIdentity mirrors the form back to disk. A complete chat
// identity is saved, an incomplete one is removed.
func (m *Model) persistIdentity() {
	switch m.mode {
	case ModeChatroom:
		id := domain.Identity{
			Username:   m.username(),
			Age:        m.age(),
			Location:   m.location(),
			ColorClass: m.colors.ClassFor(m.username()),
		}
		if id.Complete() {
			if err := m.ids.SaveIdentity(id); err != nil {
				m.log.Warn("identity save failed", zap.Error(err))
			}
		} else {
			m.ids.ClearIdentity()
		}
	case ModeGuestbook:
		if err := m.ids.SaveName(m.username()); err != nil {
			m.log.Warn("name save failed", zap.Error(err))
		}
	}
}
