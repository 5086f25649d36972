package application

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ptitevents/eventapp/internal/domain/entity"
	"github.com/ptitevents/eventapp/pkg/sanitize"
	"github.com/ptitevents/eventapp/pkg/validation"
)

// EventDraft carries every event field except the id and the participant
// set, which the store owns. MaxParticipants 0 means unbounded; Fee 0 means
// free.
type EventDraft struct {
	Title            string `json:"title" validate:"required"`
	StartDate        string `json:"start_date" validate:"required"`
	EndDate          string `json:"end_date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Location         string `json:"location" validate:"required"`
	ShortDescription string `json:"short_description"`
	LongContent      string `json:"long_content" validate:"required"`
	Poster           string `json:"poster_reference"`
	Tags             string `json:"tags"`
	MaxParticipants  int    `json:"max_participants" validate:"gte=0"`
	Fee              int    `json:"fee" validate:"gte=0"`
}

func (d EventDraft) apply(ev *entity.Event) {
	ev.Title = d.Title
	ev.StartDate = d.StartDate
	ev.EndDate = d.EndDate
	if ev.EndDate == "" {
		ev.EndDate = d.StartDate
	}
	ev.StartTime = d.StartTime
	ev.EndTime = d.EndTime
	ev.Location = d.Location
	ev.ShortDescription = d.ShortDescription
	ev.LongContent = sanitize.EventContent(d.LongContent)
	ev.Poster = d.Poster
	ev.Tags = d.Tags
	ev.MaxParticipants = d.MaxParticipants
	ev.Fee = d.Fee
}

// CreateEvent adds a new event with an empty participant set and returns
// its id. The rich-text content is sanitized once here.
func (s *Store) CreateEvent(draft EventDraft) (string, error) {
	if details := validation.Struct(draft); details != nil {
		return "", validationErr(details)
	}

	id := uuid.NewString()
	err := s.mutate(func(st *entity.Snapshot) error {
		ev := entity.Event{ID: id, Participants: []string{}}
		draft.apply(&ev)
		st.Events = append(st.Events, ev)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{"event_id": id, "title": draft.Title}).Info("event created")
	return id, nil
}

// UpdateEvent replaces every field of the event from the draft except its
// id and participant set, which survive the update.
func (s *Store) UpdateEvent(id string, draft EventDraft) error {
	if details := validation.Struct(draft); details != nil {
		return validationErr(details)
	}

	err := s.mutate(func(st *entity.Snapshot) error {
		for i := range st.Events {
			if st.Events[i].ID != id {
				continue
			}
			draft.apply(&st.Events[i])
			return nil
		}
		return ErrEventNotFound
	})
	if err != nil {
		return err
	}

	s.logger.WithField("event_id", id).Info("event updated")
	return nil
}

// DeleteEvent removes the event if present; deleting an unknown id is a
// no-op. Account state is untouched.
func (s *Store) DeleteEvent(id string) error {
	return s.mutate(func(st *entity.Snapshot) error {
		kept := st.Events[:0]
		for _, ev := range st.Events {
			if ev.ID != id {
				kept = append(kept, ev)
			}
		}
		st.Events = kept
		return nil
	})
}

// ParticipationState says which way a toggle went.
type ParticipationState string

const (
	ParticipationAdded   ParticipationState = "added"
	ParticipationRemoved ParticipationState = "removed"
)

// ToggleResult is the outcome of a participation toggle.
type ToggleResult struct {
	State ParticipationState
	Count int
}

// ToggleParticipation adds the account to the event's participant set, or
// removes it if already present, and returns the new participant count.
// Joining past MaxParticipants is not blocked; capacity is display
// metadata.
func (s *Store) ToggleParticipation(eventID, accountID string) (ToggleResult, error) {
	var result ToggleResult
	err := s.mutate(func(st *entity.Snapshot) error {
		for i := range st.Events {
			ev := &st.Events[i]
			if ev.ID != eventID {
				continue
			}
			if ev.HasParticipant(accountID) {
				kept := ev.Participants[:0]
				for _, pid := range ev.Participants {
					if pid != accountID {
						kept = append(kept, pid)
					}
				}
				ev.Participants = kept
				result = ToggleResult{State: ParticipationRemoved, Count: len(ev.Participants)}
			} else {
				ev.Participants = append(ev.Participants, accountID)
				result = ToggleResult{State: ParticipationAdded, Count: len(ev.Participants)}
			}
			return nil
		}
		return ErrEventNotFound
	})
	if err != nil {
		return ToggleResult{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id":   eventID,
		"account_id": accountID,
		"state":      result.State,
		"count":      result.Count,
	}).Info("participation toggled")
	return result, nil
}
