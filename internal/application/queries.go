package application

import (
	"time"

	"github.com/ptitevents/eventapp/internal/domain/entity"
	"github.com/ptitevents/eventapp/internal/schedule"
)

// Accounts returns all accounts in storage order.
func (s *Store) Accounts() []entity.Account {
	out := make([]entity.Account, len(s.state.Accounts))
	copy(out, s.state.Accounts)
	return out
}

// Events returns all events in storage order.
func (s *Store) Events() []entity.Event {
	out := make([]entity.Event, len(s.state.Events))
	for i, ev := range s.state.Events {
		ev.Participants = append([]string{}, ev.Participants...)
		out[i] = ev
	}
	return out
}

// AccountByID returns a copy of the account, or nil when the id does not
// resolve (including ids orphaned by account deletion).
func (s *Store) AccountByID(id string) *entity.Account {
	for _, acc := range s.state.Accounts {
		if acc.ID == id {
			out := acc
			return &out
		}
	}
	return nil
}

// EventByID returns a copy of the event, or nil when absent.
func (s *Store) EventByID(id string) *entity.Event {
	for _, ev := range s.state.Events {
		if ev.ID == id {
			out := ev
			out.Participants = append([]string{}, ev.Participants...)
			return &out
		}
	}
	return nil
}

// Current returns a copy of the authenticated account, or nil.
func (s *Store) Current() *entity.Account {
	if s.state.Session == nil {
		return nil
	}
	out := *s.state.Session
	return &out
}

// IsOrganizer reports whether the current session is an organizer account.
// Presentation uses this to gate the event-management surface.
func (s *Store) IsOrganizer() bool {
	return s.state.Session != nil && s.state.Session.Role == entity.RoleOrganizer
}

// IsStudent reports whether the current session is a student account.
func (s *Store) IsStudent() bool {
	return s.state.Session != nil && s.state.Session.Role == entity.RoleStudent
}

// Classify places the event in its temporal window using the store clock.
func (s *Store) Classify(ev entity.Event) schedule.Classification {
	return schedule.Classify(ev, s.clock.Now())
}

// RemainingLabel renders the event's countdown using the store clock.
// Callers poll; nothing is cached.
func (s *Store) RemainingLabel(ev entity.Event) string {
	return schedule.RemainingLabel(ev, s.clock.Now())
}

// CanJoin reports whether the join/leave action should be offered for the
// event: day-granularity, fail-closed on unparseable dates.
func (s *Store) CanJoin(ev entity.Event) bool {
	return !schedule.ExpiredByEndDate(ev, s.clock.Now())
}

// OngoingEvents returns events whose end day is today or later, in storage
// order. Events with unparseable dates appear in neither list.
func (s *Store) OngoingEvents() []entity.Event {
	return s.splitEvents(true)
}

// EndedEvents returns events whose end day has passed, in storage order.
func (s *Store) EndedEvents() []entity.Event {
	return s.splitEvents(false)
}

func (s *Store) splitEvents(ongoing bool) []entity.Event {
	now := s.clock.Now()
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())

	out := []entity.Event{}
	for _, ev := range s.state.Events {
		end, ok := schedule.EndDay(ev)
		if !ok {
			continue
		}
		if end.Before(today) == ongoing {
			continue
		}
		ev.Participants = append([]string{}, ev.Participants...)
		out = append(out, ev)
	}
	return out
}
