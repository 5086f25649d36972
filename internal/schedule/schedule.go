package schedule

import (
	"fmt"
	"time"

	"github.com/ptitevents/eventapp/internal/domain/entity"
)

// Snapshot date/time layouts (day-month-year, 24h clock).
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"

	defaultStartTime = "00:00"
	defaultEndTime   = "23:59"
)

// Classification is the temporal state of an event relative to "now".
type Classification int

const (
	Unknown Classification = iota
	Upcoming
	Ongoing
	Ended
)

func (c Classification) String() string {
	switch c {
	case Upcoming:
		return "upcoming"
	case Ongoing:
		return "ongoing"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Window resolves the event's effective start and end instants. Missing
// times default to 00:00 and 23:59; a missing end date falls back to the
// start date. ok is false when the stored fields do not parse.
func Window(ev entity.Event) (start, end time.Time, ok bool) {
	startDate := ev.StartDate
	endDate := ev.EndDate
	if endDate == "" {
		endDate = startDate
	}
	startTime := ev.StartTime
	if startTime == "" {
		startTime = defaultStartTime
	}
	endTime := ev.EndTime
	if endTime == "" {
		endTime = defaultEndTime
	}

	layout := DateLayout + " " + TimeLayout
	start, err := time.ParseInLocation(layout, startDate+" "+startTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.ParseInLocation(layout, endDate+" "+endTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Classify places the event in its temporal window. Events whose stored
// dates do not parse classify as Unknown rather than failing.
func Classify(ev entity.Event, now time.Time) Classification {
	start, end, ok := Window(ev)
	if !ok {
		return Unknown
	}
	switch {
	case now.Before(start):
		return Upcoming
	case now.After(end):
		return Ended
	default:
		return Ongoing
	}
}

// RemainingLabel renders the countdown shown on event cards: time to start
// for upcoming events, time to end for ongoing ones, a fixed marker once
// ended. The value changes every second; callers poll and re-render.
func RemainingLabel(ev entity.Event, now time.Time) string {
	start, end, ok := Window(ev)
	if !ok {
		return ""
	}
	switch {
	case now.Before(start):
		return "Starts in " + formatDelta(start.Sub(now))
	case now.After(end):
		return "Finished"
	default:
		return "Ends in " + formatDelta(end.Sub(now))
	}
}

// EndDay returns the event's end calendar day, falling back to the start
// date when no end date is stored. ok is false when the date does not parse.
func EndDay(ev entity.Event) (time.Time, bool) {
	endDate := ev.EndDate
	if endDate == "" {
		endDate = ev.StartDate
	}
	end, err := time.ParseInLocation(DateLayout, endDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return end, true
}

// ExpiredByEndDate is the coarser day-granularity check gating the
// join/leave action: an event is expired once its end date (start date when
// no end date is stored) is strictly before today. Unparseable dates count
// as expired.
func ExpiredByEndDate(ev entity.Event, today time.Time) bool {
	end, ok := EndDay(ev)
	if !ok {
		return true
	}
	ty, tm, td := today.Date()
	dayStart := time.Date(ty, tm, td, 0, 0, 0, 0, today.Location())
	return end.Before(dayStart)
}

func formatDelta(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60
	secs := total % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, mins, secs)
	case hours > 0:
		return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
	default:
		return fmt.Sprintf("%02d:%02d", mins, secs)
	}
}
