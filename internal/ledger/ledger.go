package ledger

import "SKCCTracker/internal/model"

// Ledger is the read-only view of the operator's logged contacts. Award
// rules never mutate the log; they only fold over it.
type Ledger interface {
	AllContacts() ([]model.Contact, error)
	Close() error
}

// Static serves a fixed in-memory contact list. Used in tests and for
// one-shot evaluations of imported logs.
type Static struct {
	Contacts []model.Contact
	Err      error
}

func NewStatic(contacts []model.Contact) *Static {
	return &Static{Contacts: contacts}
}

func (s *Static) AllContacts() ([]model.Contact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Contacts, nil
}

func (s *Static) Close() error { return nil }
