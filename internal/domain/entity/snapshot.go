package entity

// Snapshot is the complete durable state: all accounts, all events and the
// last authenticated account (kept so a restart resumes the session).
type Snapshot struct {
	Accounts []Account `json:"accounts"`
	Events   []Event   `json:"events"`
	Session  *Account  `json:"session"`
}

// NewSnapshot returns an empty but valid snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Accounts: []Account{},
		Events:   []Event{},
	}
}

// Normalize applies per-record normalization after decoding.
func (s *Snapshot) Normalize() {
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Events == nil {
		s.Events = []Event{}
	}
	for i := range s.Events {
		s.Events[i].Normalize()
	}
}

// Clone deep-copies the snapshot, participant slices included. Mutations are
// staged on a clone and committed only after a durable write succeeds.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Accounts: make([]Account, len(s.Accounts)),
		Events:   make([]Event, len(s.Events)),
	}
	copy(out.Accounts, s.Accounts)
	for i, ev := range s.Events {
		ev.Participants = append([]string{}, ev.Participants...)
		out.Events[i] = ev
	}
	if s.Session != nil {
		sess := *s.Session
		out.Session = &sess
	}
	return out
}
