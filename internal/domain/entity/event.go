package entity

// Event is a scheduled, time-boxed activity with a participant set.
//
// Dates are stored as dd/MM/yyyy and times as HH:mm, exactly as they appear
// in the snapshot file; the schedule package owns parsing and
// classification. Participants holds account ids in insertion order.
type Event struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	Location         string   `json:"location"`
	ShortDescription string   `json:"short_description"`
	LongContent      string   `json:"long_content"` // sanitized HTML
	Poster           string   `json:"poster_reference"`
	Tags             string   `json:"tags"`
	MaxParticipants  int      `json:"max_participants"` // 0 = unbounded
	Fee              int      `json:"fee"`
	Participants     []string `json:"participants"`

	// LegacyDate carries the single "date" key written by old snapshots.
	// Normalize resolves it into StartDate/EndDate once at load time so no
	// downstream code ever branches on which key exists.
	LegacyDate string `json:"date,omitempty"`
}

// Normalize resolves legacy fields and guarantees Participants is non-nil.
func (e *Event) Normalize() {
	if e.StartDate == "" {
		e.StartDate = e.LegacyDate
	}
	if e.EndDate == "" {
		e.EndDate = e.StartDate
	}
	e.LegacyDate = ""
	if e.Participants == nil {
		e.Participants = []string{}
	}
}

// HasParticipant reports whether the account id is in the participant set.
func (e *Event) HasParticipant(accountID string) bool {
	for _, id := range e.Participants {
		if id == accountID {
			return true
		}
	}
	return false
}
