package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hompy/domain"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type stubGuestbook struct {
	comments   []domain.Comment
	fetchErr   error
	addErr     error
	fetchCalls int
	added      []domain.Comment
}

func (s *stubGuestbook) Fetch(context.Context) ([]domain.Comment, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.comments, nil
}

func (s *stubGuestbook) Add(_ context.Context, c domain.Comment) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, c)
	return nil
}

type memIdentityStore struct {
	identity    domain.Identity
	hasIdentity bool
	cleared     bool
	name        string
}

func (s *memIdentityStore) LoadIdentity() (domain.Identity, bool) {
	return s.identity, s.hasIdentity
}

func (s *memIdentityStore) SaveIdentity(id domain.Identity) error {
	s.identity = id
	s.hasIdentity = true
	s.cleared = false
	return nil
}

func (s *memIdentityStore) ClearIdentity() {
	s.identity = domain.Identity{}
	s.hasIdentity = false
	s.cleared = true
}

func (s *memIdentityStore) LoadName() string        { return s.name }
func (s *memIdentityStore) SaveName(n string) error { s.name = n; return nil }

func makeComment(username, message, timestamp string) domain.Comment {
	return domain.Comment{
		Username:  username,
		Message:   message,
		Timestamp: timestamp,
	}
}

func filledChatModel(gb *stubGuestbook) Model {
	m := New(ModeChatroom, gb, &memIdentityStore{}, nil)
	m.inputs[fieldUsername].SetValue("mino")
	m.inputs[fieldAge].SetValue("29")
	m.inputs[fieldLocation].SetValue("seoul")
	m.inputs[fieldMessage].SetValue("hello there")
	return m
}
