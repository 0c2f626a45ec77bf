package store

import "hompy/domain"

// LoadIdentity returns the cached chat identity, ok=false when absent.
func (s *Store) LoadIdentity() (domain.Identity, bool) {
	var id domain.Identity
	if !s.readJSON(identityFile, &id) {
		return domain.Identity{}, false
	}
	return id, true
}

// SaveIdentity persists a complete chat identity.
func (s *Store) SaveIdentity(id domain.Identity) error {
	return s.writeJSON(identityFile, id)
}

// ClearIdentity removes the cached identity; used when the user blanks
// one of the required fields.
func (s *Store) ClearIdentity() {
	s.remove(identityFile)
}

// LoadName returns the cached guestbook display name, empty when absent.
func (s *Store) LoadName() string {
	var name string
	if !s.readJSON(nameFile, &name) {
		return ""
	}
	return name
}

// SaveName persists the guestbook display name.
func (s *Store) SaveName(name string) error {
	return s.writeJSON(nameFile, name)
}
